package domain

// Persistence keys. They match the browser localStorage layout.
const (
	KeySpinHistory       = "roulette_spin_history"
	KeySettings          = "roulette_settings"
	KeyCurrentPrediction = "roulette_current_prediction"
	KeyActiveStrategy    = "roulette_active_strategy"
	KeySavedStrategies   = "roulette_saved_strategies"
)

// StoredKeys lists every key a full reset removes.
var StoredKeys = []string{
	KeySpinHistory,
	KeySettings,
	KeyCurrentPrediction,
	KeyActiveStrategy,
	KeySavedStrategies,
}
