package config

// Tuning is the root config for tuning.json
type Tuning struct {
	Display   DisplayConfig             `json:"display" yaml:"display"`
	Match     MatchConfig               `json:"match" yaml:"match"`
	Player    PlayerConfig              `json:"player" yaml:"player"`
	Dash      DashConfig                `json:"dash" yaml:"dash"`
	Scoring   ScoringConfig             `json:"scoring" yaml:"scoring"`
	Spawning  SpawningConfig            `json:"spawning" yaml:"spawning"`
	Orb       OrbConfig                 `json:"orb" yaml:"orb"`
	Obstacles map[string]ObstacleConfig `json:"obstacles" yaml:"obstacles"`
	Feedback  FeedbackConfig            `json:"feedback" yaml:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type MatchConfig struct {
	DurationSec float64 `json:"durationSec" yaml:"durationSec"`
}

// PlayerConfig tunes the drag-based movement model.
// Speeds are per frame, not per second.
type PlayerConfig struct {
	Radius       float64 `json:"radius" yaml:"radius"`
	HitboxRadius float64 `json:"hitboxRadius" yaml:"hitboxRadius"`
	MaxSpeed     float64 `json:"maxSpeed" yaml:"maxSpeed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Friction     float64 `json:"friction" yaml:"friction"`
	Deadzone     float64 `json:"deadzone" yaml:"deadzone"`
}

type DashConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`
	DurationMs float64 `json:"durationMs" yaml:"durationMs"`
	CooldownMs float64 `json:"cooldownMs" yaml:"cooldownMs"`
}

type ScoringConfig struct {
	SurvivalIntervalMs float64 `json:"survivalIntervalMs" yaml:"survivalIntervalMs"` // Time alive per survival point
	SurvivalPoints     int     `json:"survivalPoints" yaml:"survivalPoints"`
	OrbPoints          float64 `json:"orbPoints" yaml:"orbPoints"` // Multiplied by the multiplier, then floored
	MultiplierStep     float64 `json:"multiplierStep" yaml:"multiplierStep"`
}

// SpawningConfig drives the obstacle spawn interval.
// interval = max(minIntervalMs, initialIntervalMs - level*decreasePerLevelMs)
// where level = floor(elapsed / difficultyStepSec).
type SpawningConfig struct {
	InitialIntervalMs  float64 `json:"initialIntervalMs" yaml:"initialIntervalMs"`
	MinIntervalMs      float64 `json:"minIntervalMs" yaml:"minIntervalMs"`
	DecreasePerLevelMs float64 `json:"decreasePerLevelMs" yaml:"decreasePerLevelMs"`
	DifficultyStepSec  float64 `json:"difficultyStepSec" yaml:"difficultyStepSec"`
}

type OrbConfig struct {
	Radius          float64 `json:"radius" yaml:"radius"`
	SpawnIntervalMs float64 `json:"spawnIntervalMs" yaml:"spawnIntervalMs"`
	MaxActive       int     `json:"maxActive" yaml:"maxActive"`
	Color           string  `json:"color" yaml:"color"`
}

type ObstacleConfig struct {
	Size             float64 `json:"size" yaml:"size"`
	Speed            float64 `json:"speed" yaml:"speed"`
	Color            string  `json:"color" yaml:"color"`
	AvailableFromSec float64 `json:"availableFromSec" yaml:"availableFromSec"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake" yaml:"screenShake"`
	Haptics     HapticsConfig     `json:"haptics" yaml:"haptics"`
}

type ScreenShakeConfig struct {
	Intensity  float64 `json:"intensity" yaml:"intensity"`
	DurationMs float64 `json:"durationMs" yaml:"durationMs"`
}

type HapticsConfig struct {
	HitMs       int     `json:"hitMs" yaml:"hitMs"`
	HitStrength float64 `json:"hitStrength" yaml:"hitStrength"`
	OrbMs       int     `json:"orbMs" yaml:"orbMs"`
	OrbStrength float64 `json:"orbStrength" yaml:"orbStrength"`
}
