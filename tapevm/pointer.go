package tapevm

type DataPointer struct {
	Address int
}

func (p *DataPointer) Right() error {
	if p.Address >= CellCount-1 {
		return PointerOutOfRightBound{}
	}
	p.Address++
	return nil
}

func (p *DataPointer) Left() error {
	if p.Address == 0 {
		return PointerOutOfLeftBound{}
	}
	p.Address--
	return nil
}
