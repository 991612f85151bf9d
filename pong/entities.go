package pong

// Playfield bounds and the fixed simulation rate velocities are expressed in.
const (
	FieldWidth   = 4.0
	FieldHeight  = 3.0
	CenterX      = FieldWidth / 2
	CenterY      = FieldHeight / 2
	TicksPerUnit = 60.0
)

// Default speeds, in world units per tick.
const (
	DefaultBallSpeed   = 1.0 / TicksPerUnit
	DefaultPaddleSpeed = 1.5 / TicksPerUnit
	DefaultDeadZone    = 0.2
)

// NewBall builds the ball at the center, moving right.
func NewBall() Entity {
	glyph := GlyphForRune('@')
	return Entity{
		Position:      &Position{X: CenterX, Y: CenterY},
		HorizVelocity: &HorizVelocity{X: DefaultBallSpeed},
		VertVelocity:  &VertVelocity{Y: 0},
		Sprite: &Sprite{
			XSize: 0.10,
			YSize: 0.20,
			Color: Color{0.8, 0.7, 0.3, 0.0},
			Glyph: &glyph,
		},
	}
}

// PaddleX returns the fixed horizontal position of a side's paddle.
func PaddleX(side Side) float64 {
	if side == Right {
		return 3.9
	}
	return 0.1
}

// NewPaddle builds a paddle. Paddles move vertically only.
func NewPaddle(side Side) Entity {
	x := PaddleX(side)
	return Entity{
		Position:     &Position{X: x, Y: CenterY},
		VertVelocity: &VertVelocity{Y: 0},
		Sprite: &Sprite{
			XSize: 0.1,
			YSize: 0.4,
			Color: Color{x / FieldWidth, 1 - x/FieldWidth, 0.3, 1.0},
		},
	}
}

// NewBackground builds the full-field backdrop.
func NewBackground() Entity {
	return Entity{
		Position: &Position{X: CenterX, Y: CenterY},
		Sprite: &Sprite{
			XSize: FieldWidth,
			YSize: FieldHeight,
			Color: Color{0.45, 0.4, 1.0, 1.0},
		},
	}
}

// NewBackgroundOverlay builds the translucent inner panel drawn over the backdrop.
func NewBackgroundOverlay() Entity {
	return Entity{
		Position: &Position{X: CenterX, Y: CenterY},
		Sprite: &Sprite{
			XSize: 3.0,
			YSize: 2.0,
			Color: Color{0.0, 0.0, 0.0, 0.3},
		},
	}
}

// NewScoreCounter builds a side's score display, starting at zero.
func NewScoreCounter(side Side) Entity {
	x := 1.5
	if side == Right {
		x = 2.5
	}
	glyph, _ := GlyphForScore(0)
	return Entity{
		Position: &Position{X: x, Y: 2.5},
		Sprite: &Sprite{
			XSize: 0.3,
			YSize: 0.6,
			Color: Color{1.0, 1.0, 1.0, 0.0},
			Glyph: &glyph,
		},
		Score: &Score{Value: 0},
	}
}
