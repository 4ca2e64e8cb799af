package wezzle

// Sound identifies a sound effect requested by the engine.
type Sound int

const (
	SoundBleep    Sound = iota // tiles dropped
	SoundClick                 // piece committed
	SoundLine                  // line cleared
	SoundBlast                 // item triggered
	SoundLevelUp
	SoundGameOver
	SoundError // commit rejected
)

// SoundPlayer plays engine sound effects. Play must not block.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSound discards every sound.
type NopSound struct{}

func (NopSound) Play(Sound) {}
