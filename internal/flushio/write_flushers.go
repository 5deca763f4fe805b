package flushio

import "io"

// WriteFlushers combines any number of WriteFlusher-s into a single one that
// writes into, and flushes, all of them in order. Nil entries are skipped.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all writeFlushers
	for _, wf := range wfs {
		if many, ok := wf.(writeFlushers); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
