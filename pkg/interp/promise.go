package interp

import (
	"fmt"

	"github.com/mrosila/gosch/pkg/value"
)

// Force implements spec §4.6: a promise already forced returns its
// memoized value without re-evaluating; otherwise Expression is evaluated
// in Env, memoized, and returned. A forced delay may hold any value (spec
// §8 scenario 5: (force (delay 42)) => 42) — the pair-or-nil consistency
// check only applies to stream-tail forcing, see ForceStreamTail. Exposed
// for pkg/builtins' force procedure.
func (in *Interp) Force(p *value.Promise) (value.Value, error) {
	if p.Forced() {
		return p.Memoized(), nil
	}
	v, err := in.eval(p.Expression, p.Env)
	if err != nil {
		return nil, err
	}
	p.Store(v)
	return v, nil
}

// ForceStreamTail forces p the way stream-cdr does (spec §4.6, §6): a
// cons-stream's tail must itself evaluate to a pair or () unless
// DotsAreCons relaxes that consistency check, since a stream is only a
// stream if its tail is itself another stream cell or the empty stream.
func (in *Interp) ForceStreamTail(p *value.Promise) (value.Value, error) {
	v, err := in.Force(p)
	if err != nil {
		return nil, err
	}
	if !in.cfg.DotsAreCons {
		_, isPair := v.(*value.Pair)
		_, isNil := v.(value.NilT)
		if !isPair && !isNil {
			return nil, fmt.Errorf("result of forcing a stream tail should be a pair or (), got: %s", value.Repr(v))
		}
	}
	return v, nil
}
