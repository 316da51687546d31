package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningFile is the name of the constant set shipped with the game.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec is every constant the game core reads. One file, one
// consistent set.
type TuningSpec struct {
	Name    string      `yaml:"name"`
	Screen  ScreenSpec  `yaml:"screen"`
	Board   BoardSpec   `yaml:"board"`
	Player  PlayerSpec  `yaml:"player"`
	Enemy   EnemySpec   `yaml:"enemy"`
	Scoring ScoringSpec `yaml:"scoring"`
	HUD     HUDSpec     `yaml:"hud"`
}

// LoadTuning reads the tuning file. An empty path resolves prefabs/tuning.yaml
// on disk first and the embedded copy second; any other path is read from
// disk only.
func LoadTuning(path string) (*TuningSpec, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
		}
		return ParseTuning(data)
	}

	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid tuning: %w", err)
	}
	return &spec, nil
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*TuningSpec, error) {
	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid tuning: %w", err)
	}
	return &spec, nil
}

// Validate checks the cross-field rules the game relies on.
func (t *TuningSpec) Validate() error {
	var errs []error
	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must be positive, got %dx%d", t.Screen.Width, t.Screen.Height))
	}
	if t.Board.Cols <= 0 || t.Board.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board must have rows and cols, got %dx%d", t.Board.Cols, t.Board.Rows))
	}
	if len(t.Board.RowTiles) != t.Board.Rows {
		errs = append(errs, fmt.Errorf("board.row_tiles has %d entries for %d rows", len(t.Board.RowTiles), t.Board.Rows))
	}

	p := t.Player
	if p.Sprite.Image == "" {
		errs = append(errs, errors.New("player.sprite.image is empty"))
	}
	if p.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", p.Speed))
	}
	if p.Speed-p.VerticalTrim <= 0 {
		errs = append(errs, fmt.Errorf("player.vertical_trim %v leaves no vertical step", p.VerticalTrim))
	}
	if p.Bounds.MinX > p.Bounds.MaxX || p.Bounds.MinY > p.Bounds.MaxY {
		errs = append(errs, fmt.Errorf("player.bounds are inverted: %+v", p.Bounds))
	}
	if !p.Bounds.Contains(p.Start.X, p.Start.Y) {
		errs = append(errs, fmt.Errorf("player.start (%v, %v) is outside bounds", p.Start.X, p.Start.Y))
	}
	if p.GoalY <= p.Bounds.MinY {
		errs = append(errs, fmt.Errorf("player.goal_y %v is unreachable with min_y %v", p.GoalY, p.Bounds.MinY))
	}
	if p.Start.Y < p.GoalY {
		errs = append(errs, fmt.Errorf("player.start.y %v is already past goal_y %v", p.Start.Y, p.GoalY))
	}

	e := t.Enemy
	if e.Sprite.Image == "" {
		errs = append(errs, errors.New("enemy.sprite.image is empty"))
	}
	if e.WrapX <= 0 {
		errs = append(errs, fmt.Errorf("enemy.wrap_x must be positive, got %v", e.WrapX))
	}
	if e.LaneMin >= e.LaneMax {
		errs = append(errs, fmt.Errorf("enemy lanes [%v, %v) are empty", e.LaneMin, e.LaneMax))
	}
	if e.SpeedMin < 0 || e.SpeedMin >= e.SpeedMax {
		errs = append(errs, fmt.Errorf("enemy speeds [%v, %v) are empty", e.SpeedMin, e.SpeedMax))
	}

	for name, hb := range map[string]HitboxSpec{"player": p.Hitbox, "enemy": e.Hitbox} {
		if hb.Width <= 0 || hb.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s.hitbox must have area, got %vx%v", name, hb.Width, hb.Height))
		}
	}

	if t.Scoring.CollisionPenalty < 0 || t.Scoring.GoalReward < 0 {
		errs = append(errs, fmt.Errorf("scoring deltas must not be negative: %+v", t.Scoring))
	}
	return errors.Join(errs...)
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type BoardSpec struct {
	Cols       int      `yaml:"cols"`
	Rows       int      `yaml:"rows"`
	CellWidth  float64  `yaml:"cell_width"`
	CellHeight float64  `yaml:"cell_height"`
	RowTiles   []string `yaml:"row_tiles"`
}

type PlayerSpec struct {
	Sprite       SpriteSpec    `yaml:"sprite"`
	Speed        float64       `yaml:"speed"`
	VerticalTrim float64       `yaml:"vertical_trim"`
	Start        TransformSpec `yaml:"start"`
	Bounds       BoundsSpec    `yaml:"bounds"`
	GoalY        float64       `yaml:"goal_y"`
	Hitbox       HitboxSpec    `yaml:"hitbox"`
}

type EnemySpec struct {
	Sprite   SpriteSpec `yaml:"sprite"`
	StartX   float64    `yaml:"start_x"`
	WrapX    float64    `yaml:"wrap_x"`
	LaneMin  float64    `yaml:"lane_min"`
	LaneMax  float64    `yaml:"lane_max"`
	SpeedMin float64    `yaml:"speed_min"`
	SpeedMax float64    `yaml:"speed_max"`
	Hitbox   HitboxSpec `yaml:"hitbox"`
}

type ScoringSpec struct {
	CollisionPenalty int `yaml:"collision_penalty"`
	GoalReward       int `yaml:"goal_reward"`
}

type HUDSpec struct {
	Color      *YAMLColor `yaml:"color"`
	Background *YAMLColor `yaml:"background"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Contains reports whether (x, y) lies inside the closed bounds.
func (b BoundsSpec) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

type SpriteSpec struct {
	Image string `yaml:"image"`
}

type HitboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color, or fallback when the field was omitted.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
