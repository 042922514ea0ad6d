package spotlight

// ScatterTarget is the direction an image flies towards, in viewport units.
// Targets are index-aligned with the animated images.
type ScatterTarget struct {
	DirX float64 `json:"x" yaml:"x"`
	DirY float64 `json:"y" yaml:"y"`
}

// DefaultScatterTargets holds the twenty built-in directions.
var DefaultScatterTargets = []ScatterTarget{
	{DirX: 1.3, DirY: 0.7},
	{DirX: -1.5, DirY: 1.0},
	{DirX: 1.1, DirY: -1.3},
	{DirX: -1.7, DirY: -0.8},
	{DirX: 0.8, DirY: 1.5},
	{DirX: -1.0, DirY: -1.4},
	{DirX: 1.6, DirY: 0.3},
	{DirX: -0.7, DirY: 1.7},
	{DirX: 1.2, DirY: -1.6},
	{DirX: -1.4, DirY: 0.9},
	{DirX: 1.8, DirY: -0.5},
	{DirX: -1.1, DirY: -1.8},
	{DirX: 0.9, DirY: 1.8},
	{DirX: -1.9, DirY: 0.4},
	{DirX: 1.0, DirY: -1.9},
	{DirX: -0.8, DirY: 1.9},
	{DirX: 1.7, DirY: -1.0},
	{DirX: -1.3, DirY: -1.2},
	{DirX: 0.7, DirY: 2.0},
	{DirX: 1.25, DirY: -0.2},
}
