package nakama

const (
	// RpcEvaluateHand classifies a single five-card hand.
	RpcEvaluateHand = "evaluate_hand"
	// RpcRankHands classifies a batch of hands and ranks them strongest first.
	RpcRankHands = "rank_hands"
	// RpcCompareHands compares two hands under the showdown total order.
	RpcCompareHands = "compare_hands"

	// ConfigPathEnv names the env var pointing at the optional JSON config file.
	ConfigPathEnv = "SHOWDOWN_CONFIG_PATH"
)
