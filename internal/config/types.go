package config

type Config struct {
	DatabaseConnString string
	Environment        string
	Port               string

	// ranking policy overrides, empty means package defaults
	ViralThreshold       float64
	ExplorationFraction  float64
	CandidateOverfetch   int
	MaxPerCreator        int
	MaxPerCategory       int
	TrendingSnapshotSecs int
}
