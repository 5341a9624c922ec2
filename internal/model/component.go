package model

// Component is implemented by every catalog aggregate so the generic catalog
// service can assign IDs and attach photos without knowing the concrete type.
type Component interface {
	ComponentID() string
	SetComponentID(id string)
	PrependPhoto(url string)
}

func (c *CPU) ComponentID() string      { return c.ID }
func (c *CPU) SetComponentID(id string) { c.ID = id }
func (c *CPU) PrependPhoto(url string)  { c.PhotoURLs = append([]string{url}, c.PhotoURLs...) }

func (g *GPU) ComponentID() string      { return g.ID }
func (g *GPU) SetComponentID(id string) { g.ID = id }
func (g *GPU) PrependPhoto(url string)  { g.PhotoURLs = append([]string{url}, g.PhotoURLs...) }

func (r *RAM) ComponentID() string      { return r.ID }
func (r *RAM) SetComponentID(id string) { r.ID = id }
func (r *RAM) PrependPhoto(url string)  { r.PhotoURLs = append([]string{url}, r.PhotoURLs...) }

func (s *SSD) ComponentID() string      { return s.ID }
func (s *SSD) SetComponentID(id string) { s.ID = id }
func (s *SSD) PrependPhoto(url string)  { s.PhotoURLs = append([]string{url}, s.PhotoURLs...) }

func (h *HDD) ComponentID() string      { return h.ID }
func (h *HDD) SetComponentID(id string) { h.ID = id }
func (h *HDD) PrependPhoto(url string)  { h.PhotoURLs = append([]string{url}, h.PhotoURLs...) }

func (m *Motherboard) ComponentID() string      { return m.ID }
func (m *Motherboard) SetComponentID(id string) { m.ID = id }
func (m *Motherboard) PrependPhoto(url string) {
	m.PhotoURLs = append([]string{url}, m.PhotoURLs...)
}

func (p *PowerSupply) ComponentID() string      { return p.ID }
func (p *PowerSupply) SetComponentID(id string) { p.ID = id }
func (p *PowerSupply) PrependPhoto(url string) {
	p.PhotoURLs = append([]string{url}, p.PhotoURLs...)
}

func (p *PcCase) ComponentID() string      { return p.ID }
func (p *PcCase) SetComponentID(id string) { p.ID = id }
func (p *PcCase) PrependPhoto(url string)  { p.PhotoURLs = append([]string{url}, p.PhotoURLs...) }

func (p *PC) ComponentID() string      { return p.ID }
func (p *PC) SetComponentID(id string) { p.ID = id }
func (p *PC) PrependPhoto(url string)  { p.PhotoURLs = append([]string{url}, p.PhotoURLs...) }

func (w *Workstation) ComponentID() string      { return w.ID }
func (w *Workstation) SetComponentID(id string) { w.ID = id }
func (w *Workstation) PrependPhoto(url string) {
	w.PhotoURLs = append([]string{url}, w.PhotoURLs...)
}
