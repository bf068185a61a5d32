package engine

// PipCount returns the total number of pips side needs to bear off every
// chequer. A chequer at view index i is 25-i pips from the tray, so chequers
// on the bar count 25 each. The starting layout is 167 for both sides.
func (b *Board) PipCount(side Player) int {
	v := b.View(side)
	pips := 0
	for i := Bar; i < Off; i++ {
		if pt := v[i]; !pt.Empty() && pt.Owner == side {
			pips += int(pt.Count) * int(Off-i)
		}
	}
	return pips
}
