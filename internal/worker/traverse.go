package worker

import (
	"iter"

	"github.com/vk/workgridgo/internal/component"
)

// walkFrame is one nesting level of an in-progress walk: a pull
// iterator over that level's role traversal plus the path of container
// names leading to it.
type walkFrame struct {
	next func() (*component.Component, bool)
	stop func()
	path string
}

// walk drives a full depth-first traversal across nesting levels using
// an explicit frame stack, so arbitrarily deep structures cannot
// exhaust the call stack. visit receives the path of the enclosing
// worker and each component in order; returning false or an error stops
// the walk. Deferred payloads are never resolved here — an unresolved
// component is treated as a leaf.
func (w *Worker) walk(visit func(path string, c *component.Component) (bool, error)) error {
	frame, err := w.frame(w.name)
	if err != nil {
		return err
	}
	frames := []walkFrame{frame}
	defer func() {
		for _, f := range frames {
			f.stop()
		}
	}()

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		c, ok := top.next()
		if !ok {
			top.stop()
			frames = frames[:len(frames)-1]
			continue
		}
		keepGoing, err := visit(top.path, c)
		if err != nil {
			return err
		}
		if !keepGoing {
			return nil
		}
		if nested, ok := nestedWorker(c); ok {
			child, err := nested.frame(top.path + "/" + nested.name)
			if err != nil {
				return err
			}
			frames = append(frames, child)
		}
	}
	return nil
}

// frame opens a pull iterator over this worker's own role traversal.
func (w *Worker) frame(path string) (walkFrame, error) {
	seq, err := w.role.Traversal(w.Hybrid, w.opts)
	if err != nil {
		return walkFrame{}, err
	}
	next, stop := iter.Pull(seq)
	return walkFrame{next: next, stop: stop, path: path}, nil
}

// nestedWorker returns the worker nested in c, if c's payload is an
// already-materialized Worker. Deferred, unresolved payloads stay
// opaque during structural walks.
func nestedWorker(c *component.Component) (*Worker, bool) {
	if !c.Resolved() {
		return nil, false
	}
	payload, err := c.Payload()
	if err != nil {
		return nil, false
	}
	nested, ok := payload.(*Worker)
	return nested, ok
}
