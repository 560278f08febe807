package star

// Pick exposes the threshold lookup for a fixed draw.
func (t Table) Pick(u float64) Category { return t.pick(u) }
