package params

// Canonical normalizes a value decoded from TOML or YAML into the store's
// value vocabulary: integers become float64 (except bools and strings,
// which pass through), and []any slices collapse to []float64 or []string
// when homogeneous.
func Canonical(v any) any {
	switch vv := v.(type) {
	case int:
		return float64(vv)
	case int64:
		return float64(vv)
	case float32:
		return float64(vv)
	case []any:
		return canonicalSlice(vv)
	case []float64, []string, float64, bool, string:
		return vv
	default:
		return v
	}
}

// CanonicalParams applies Canonical to every value of p in place and
// returns p.
func CanonicalParams(p Params) Params {
	for k, v := range p {
		p[k] = Canonical(v)
	}
	return p
}

func canonicalSlice(in []any) any {
	if len(in) == 0 {
		return []float64{}
	}
	switch in[0].(type) {
	case string:
		out := make([]string, 0, len(in))
		for _, e := range in {
			s, ok := e.(string)
			if !ok {
				return in
			}
			out = append(out, s)
		}
		return out
	default:
		out := make([]float64, 0, len(in))
		for _, e := range in {
			switch n := e.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			case int64:
				out = append(out, float64(n))
			default:
				return in
			}
		}
		return out
	}
}
