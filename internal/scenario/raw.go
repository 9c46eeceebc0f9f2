package scenario

// RawDocument is an unvalidated document. Nil pointers are absent fields
// and take their defaults in Validate.
type RawDocument struct {
	FPS       *float64
	Width     *float64
	Height    *float64
	Output    *string
	Cinematic *bool
	Scenes    []RawScene
}

// RawScene carries the union of all variant fields; Type selects which of
// them Validate reads.
type RawScene struct {
	Type       string
	Duration   *float64
	Transition *string

	// text
	Text       *string
	FontSize   *float64
	Color      *string
	Background *string
	Animation  *RawAnimation

	// image and video
	Src *string

	// image
	Overlays []RawOverlay
	KenBurns *RawKenBurns

	// video
	Volume *float64
}

type RawOverlay struct {
	Text     *string
	FontSize *float64
	Color    *string
	Top      *string
	Left     *string
}

type RawKenBurns struct {
	ZoomFrom *float64
	ZoomTo   *float64
	PanXFrom *float64
	PanXTo   *float64
	PanYFrom *float64
	PanYTo   *float64
}

type RawAnimation struct {
	Entrance       *string
	DurationFrames *float64
}

// Raw returns the document with every field set explicitly. Validating the
// result yields a document equal to d.
func (d *Document) Raw() RawDocument {
	raw := RawDocument{
		FPS:       Ptr(d.FPS),
		Width:     Ptr(float64(d.Width)),
		Height:    Ptr(float64(d.Height)),
		Output:    Ptr(d.Output),
		Cinematic: Ptr(d.Cinematic),
		Scenes:    make([]RawScene, 0, len(d.Scenes)),
	}

	for _, s := range d.Scenes {
		base := s.Base()
		rs := RawScene{
			Type:       string(s.Type()),
			Duration:   Ptr(base.Duration),
			Transition: Ptr(string(base.Transition)),
		}

		switch sc := s.(type) {
		case *TextScene:
			rs.Text = Ptr(sc.Text)
			rs.FontSize = Ptr(sc.FontSize)
			rs.Color = Ptr(sc.Color)
			rs.Background = Ptr(sc.Background)
			if sc.Animation != nil {
				rs.Animation = &RawAnimation{
					Entrance:       Ptr(string(sc.Animation.Entrance)),
					DurationFrames: Ptr(float64(sc.Animation.DurationFrames)),
				}
			}
		case *ImageScene:
			rs.Src = Ptr(sc.Src)
			for _, o := range sc.Overlays {
				ro := RawOverlay{
					Text:  Ptr(o.Text),
					Color: Ptr(o.Color),
					Top:   Ptr(o.Top),
					Left:  Ptr(o.Left),
				}
				if o.FontSize != nil {
					ro.FontSize = Ptr(*o.FontSize)
				}
				rs.Overlays = append(rs.Overlays, ro)
			}
			if kb := sc.KenBurns; kb != nil {
				rs.KenBurns = &RawKenBurns{
					ZoomFrom: Ptr(kb.ZoomFrom),
					ZoomTo:   Ptr(kb.ZoomTo),
					PanXFrom: Ptr(kb.PanXFrom),
					PanXTo:   Ptr(kb.PanXTo),
					PanYFrom: Ptr(kb.PanYFrom),
					PanYTo:   Ptr(kb.PanYTo),
				}
			}
		case *VideoScene:
			rs.Src = Ptr(sc.Src)
			rs.Volume = Ptr(sc.Volume)
		default:
			panic("scenario: unhandled scene variant " + string(s.Type()))
		}

		raw.Scenes = append(raw.Scenes, rs)
	}
	return raw
}
