package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"showdown/internal/app"
)

// EvaluateHandRequest carries one hand string, e.g. "KD KS QS KC KH".
type EvaluateHandRequest struct {
	Hand string `json:"hand"`
}

// RankHandsRequest carries the hand strings to rank.
type RankHandsRequest struct {
	Hands []string `json:"hands"`
}

// RankHandsResponse returns the hands strongest first; exact ties share
// a place.
type RankHandsResponse struct {
	Ranking []app.RankedHand `json:"ranking"`
}

// CompareHandsRequest carries the two hands to compare.
type CompareHandsRequest struct {
	HandA string `json:"hand_a"`
	HandB string `json:"hand_b"`
}

// CompareHandsResponse reports -1 if hand_a is weaker, 0 on an exact tie,
// 1 if hand_a is stronger.
type CompareHandsResponse struct {
	Result int `json:"result"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcEvaluateHand, rpcEvaluateHand); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcRankHands, rpcRankHands); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcCompareHands, rpcCompareHands)
}

func rpcEvaluateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req EvaluateHandRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Error("evaluate_hand: bad payload: %v", err)
		return "", fmt.Errorf("bad payload: %w", err)
	}

	res, err := app.NewService().EvaluateHand(req.Hand)
	if err != nil {
		logger.Error("evaluate_hand [%q]: %v", req.Hand, err)
		return "", err
	}

	b, _ := json.Marshal(res)
	return string(b), nil
}

func rpcRankHands(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req RankHandsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Error("rank_hands: bad payload: %v", err)
		return "", fmt.Errorf("bad payload: %w", err)
	}

	ranking, err := app.NewService().RankHands(req.Hands)
	if err != nil {
		logger.Error("rank_hands [%d hands]: %v", len(req.Hands), err)
		return "", err
	}

	b, _ := json.Marshal(RankHandsResponse{Ranking: ranking})
	return string(b), nil
}

func rpcCompareHands(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CompareHandsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Error("compare_hands: bad payload: %v", err)
		return "", fmt.Errorf("bad payload: %w", err)
	}

	result, err := app.NewService().CompareHands(req.HandA, req.HandB)
	if err != nil {
		logger.Error("compare_hands: %v", err)
		return "", err
	}

	b, _ := json.Marshal(CompareHandsResponse{Result: result})
	return string(b), nil
}
