package render

// DebugState holds the debug overlay flags. It belongs to the App so it
// survives round resets.
type DebugState struct {
	ShowTargets bool // Player target, goblin target and the catch window
	ShowStats   bool // TPS/FPS and raw actor coordinates
}

// Toggle flips every overlay on or off together (F1)
func (d *DebugState) Toggle() {
	on := !(d.ShowTargets || d.ShowStats)
	d.ShowTargets = on
	d.ShowStats = on
}
