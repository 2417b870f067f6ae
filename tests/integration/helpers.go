package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-go/v2"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	UserID  string
}

func NewTestClient(t *testing.T) *TestClient {
	client := nakama.NewClient(ServerKey, Host, Port, false)

	// Create unique ID
	deviceID := fmt.Sprintf("test_device_%d", time.Now().UnixNano())

	// Authenticate
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	return &TestClient{
		Client:  client,
		Session: session,
		UserID:  session.UserId,
	}
}

// CallRPC invokes a server RPC and returns the raw payload string.
func (tc *TestClient) CallRPC(t *testing.T, id, payload string) string {
	rpc, err := tc.Client.RpcFunc(context.Background(), tc.Session, id, payload)
	if err != nil {
		t.Fatalf("RPC %s failed: %v", id, err)
	}
	return rpc.Payload
}
