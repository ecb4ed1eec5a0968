package flow

// HeightProbe is the invisible measurement layer behind a flow's packed
// content. It has zero size of its own, tracks the content bounding
// box, and writes the box height into the flow's height state whenever
// it changes. One writer (the probe), one reader (the flow).
type HeightProbe struct {
	Base
	content  Size
	observed bool
	target   *State[int]
}

// NewHeightProbe creates a probe reporting into the given height state.
func NewHeightProbe(target *State[int]) *HeightProbe {
	return &HeightProbe{target: target}
}

// Observe records the content bounding box measured during a layout
// pass. A changed height is pushed to the target state; an unchanged
// one is dropped, which is what stops the measure/apply loop from
// cascading across passes.
func (p *HeightProbe) Observe(content Size) {
	changed := content.Height != p.content.Height
	p.content = content
	p.observed = true
	if changed && p.target != nil {
		p.target.Set(content.Height)
	}
}

// Content returns the last observed bounding box.
func (p *HeightProbe) Content() Size {
	return p.content
}

// Retarget points the probe at a different height state. A height
// observed before the retarget is replayed into the new state, so a
// late binder starts from the current measurement instead of waiting
// for the next content change.
func (p *HeightProbe) Retarget(target *State[int]) {
	p.target = target
	if p.observed && target != nil {
		target.Set(p.content.Height)
	}
}

// MinSize implements Component. The probe never asks for space.
func (p *HeightProbe) MinSize() (int, int) {
	return 0, 0
}

// Size implements Component.
func (p *HeightProbe) Size() (int, int) {
	return 0, 0
}

// Render implements Component. The probe draws nothing.
func (p *HeightProbe) Render(buf *Buffer, x, y int) {}
