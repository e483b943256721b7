package config

// ClipDef describes one animation state of the player.
type ClipDef struct {
	Frames   int     // sprite frames, used by the renderer only
	Duration float64 // seconds for one pass
	Loop     bool
	Next     string // state entered when a non-looping clip finishes
}

// PlayerClips is the player's animation state table.
var PlayerClips = map[string]ClipDef{
	StateIdle:        {Frames: 6, Duration: 1.0, Loop: true},
	StateIdleToRun:   {Frames: 3, Duration: 0.25, Next: StateRun},
	StateRun:         {Frames: 8, Duration: 0.6, Loop: true},
	StateWalk:        {Frames: 8, Duration: 0.8, Loop: true},
	StateJump:        {Frames: 3, Duration: 0.3},
	StateFall:        {Frames: 2, Duration: 0.4, Loop: true},
	StateHighLand:    {Frames: 5, Duration: 1.05, Next: StateIdle},
	StateSplat:       {Frames: 8, Duration: 1.6},
	StateProneDown:   {Frames: 4, Duration: 0.2, Next: StateProneTo},
	StateProneTo:     {Frames: 2, Duration: 0.1, Next: StateProneIdle},
	StateProneIdle:   {Frames: 4, Duration: 1.0, Loop: true},
	StateCrawl:       {Frames: 6, Duration: 0.8, Loop: true},
	StateProneUp:     {Frames: 4, Duration: 0.2, Next: StateIdle},
	StateSlip:        {Frames: 6, Duration: 1.5, Next: StateSlipRecover},
	StateSlipRecover: {Frames: 5, Duration: 0.6, Next: StateIdle},

	StateSpinKick:    {Frames: 9, Duration: 0.7},
	StateSKFall:      {Frames: 2, Duration: 0.3, Loop: true},
	StateSKRecover:   {Frames: 4, Duration: 0.4},
	StatePunch:       {Frames: 6, Duration: 1.45},
	StateUppercut:    {Frames: 7, Duration: 0.6},
	StateGroundPound: {Frames: 4, Duration: 0.25, Next: StateGPFall},
	StateGPFall:      {Frames: 2, Duration: 0.2, Loop: true},
	StateGPRecover:   {Frames: 5, Duration: 0.6},
}
