package value

// Repr renders v in the dialect's surface syntax, used only for trace and
// error messages (spec §6): procedures render as #[name] for builtins and
// as (lambda formals body...) / (mu formals body...) for closures; promises
// render as #[promise (forced|not forced)]; everything else uses its own
// String().
func Repr(v Value) string {
	if v == nil {
		return "()"
	}
	switch t := v.(type) {
	case *Pair:
		return reprPair(t)
	default:
		return v.String()
	}
}

func reprPair(p *Pair) string {
	s := "(" + Repr(p.First)
	rest := p.Rest
	for {
		switch t := rest.(type) {
		case NilT:
			return s + ")"
		case *Pair:
			s += " " + Repr(t.First)
			rest = t.Rest
		default:
			// improper list: show the dotted tail
			return s + " . " + Repr(rest) + ")"
		}
	}
}
