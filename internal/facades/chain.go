package facades

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/keystore"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Chain gateway RPC methods.
const (
	ChainServiceName     = "chain.v1.ChainGateway"
	MethodSubmitTransfer = "/" + ChainServiceName + "/SubmitTransfer"
	MethodGetTransfer    = "/" + ChainServiceName + "/GetTransfer"
	MethodGetBalance     = "/" + ChainServiceName + "/GetBalance"
)

// Transfer states reported by the gateway.
const (
	TransferStateConfirmed = "confirmed"
	TransferStateFailed    = "failed"
	TransferStatePending   = "pending"
	TransferStateNotFound  = "not_found"
)

// TransferPayload is the signed part of a transfer submission.
type TransferPayload struct {
	From           string          `json:"from"`
	To             string          `json:"to"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       models.Currency `json:"currency"`
	IdempotencyKey string          `json:"idempotency_key"`
}

type SubmitTransferRequest struct {
	Payload   TransferPayload `json:"payload"`
	Signature string          `json:"signature"` // base64 ed25519 over the JSON payload
}

type GetTransferRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}

// TransferReply describes a transfer known to the gateway.
type TransferReply struct {
	State           string `json:"state"` // confirmed | failed | pending | not_found
	TransactionHash string `json:"transaction_hash,omitempty"`
	Error           string `json:"error,omitempty"`
}

type GetBalanceRequest struct {
	Address  string          `json:"address"`
	Currency models.Currency `json:"currency"`
}

type BalanceReply struct {
	Balance decimal.Decimal `json:"balance"`
}

// ChainClient is the chain gateway RPC surface.
type ChainClient interface {
	SubmitTransfer(ctx context.Context, in *SubmitTransferRequest) (*TransferReply, error)
	GetTransfer(ctx context.Context, in *GetTransferRequest) (*TransferReply, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest) (*BalanceReply, error)
}

// KeyOpener decrypts a sealed wallet key.
type KeyOpener interface {
	PrivateKey(sealed []byte) (ed25519.PrivateKey, error)
}

type chainGRPCClient struct {
	conn grpc.ClientConnInterface
}

// NewChainGRPCClient returns a ChainClient calling the gateway over conn with the JSON codec.
func NewChainGRPCClient(conn grpc.ClientConnInterface) ChainClient {
	return &chainGRPCClient{conn: conn}
}

func (c *chainGRPCClient) SubmitTransfer(ctx context.Context, in *SubmitTransferRequest) (*TransferReply, error) {
	out := new(TransferReply)
	if err := c.conn.Invoke(ctx, MethodSubmitTransfer, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chainGRPCClient) GetTransfer(ctx context.Context, in *GetTransferRequest) (*TransferReply, error) {
	out := new(TransferReply)
	if err := c.conn.Invoke(ctx, MethodGetTransfer, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chainGRPCClient) GetBalance(ctx context.Context, in *GetBalanceRequest) (*BalanceReply, error) {
	out := new(BalanceReply)
	if err := c.conn.Invoke(ctx, MethodGetBalance, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

// ChainGatewayFacade implements the transfer adapter on top of the chain gateway.
// It signs each submission with the sending wallet's key.
type ChainGatewayFacade struct {
	client ChainClient
	keys   KeyOpener
}

// NewChainGatewayFacade creates a new facade with a chain gateway client.
func NewChainGatewayFacade(client ChainClient, keys KeyOpener) *ChainGatewayFacade {
	return &ChainGatewayFacade{client: client, keys: keys}
}

// Transfer submits a signed transfer. Transport failures after submission may have
// reached the chain and are reported as ambiguous.
func (f *ChainGatewayFacade) Transfer(ctx context.Context, wallet *models.CustodialWallet, req models.TransferRequest) models.TransferResult {
	priv, err := f.keys.PrivateKey(wallet.EncryptedPrivateKey)
	if err != nil {
		logger.Log.Errorw("failed to open wallet key", "walletID", wallet.ID, "error", err)
		return models.TransferResult{Status: models.TransferStatusFailed, Error: "wallet key unavailable"}
	}
	if keystore.Address(priv) != wallet.WalletAddress {
		logger.Log.Errorw("wallet key does not match its address", "walletID", wallet.ID, "address", wallet.WalletAddress)
		return models.TransferResult{Status: models.TransferStatusFailed, Error: "wallet key mismatch"}
	}

	payload := TransferPayload{
		From:           wallet.WalletAddress,
		To:             req.Destination,
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.TransferResult{Status: models.TransferStatusFailed, Error: err.Error()}
	}

	reply, err := f.client.SubmitTransfer(ctx, &SubmitTransferRequest{
		Payload:   payload,
		Signature: base64.StdEncoding.EncodeToString(ed25519.Sign(priv, raw)),
	})
	if err != nil {
		logger.Log.Errorw("failed to submit transfer via gRPC",
			"walletID", wallet.ID, "currency", req.Currency, "key", req.IdempotencyKey, "error", err)
		return models.TransferResult{Status: classify(err), Error: err.Error()}
	}
	return fromReply(reply)
}

// Lookup asks the gateway for the outcome of the transfer submitted with idempotencyKey.
// A transfer the gateway never saw is reported as failed.
func (f *ChainGatewayFacade) Lookup(ctx context.Context, idempotencyKey string) models.TransferResult {
	reply, err := f.client.GetTransfer(ctx, &GetTransferRequest{IdempotencyKey: idempotencyKey})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.TransferResult{Status: models.TransferStatusFailed, Error: "transfer not found"}
		}
		logger.Log.Errorw("failed to look up transfer via gRPC", "key", idempotencyKey, "error", err)
		return models.TransferResult{Status: models.TransferStatusAmbiguous, Error: err.Error()}
	}
	return fromReply(reply)
}

// Balance returns the live on-chain balance of address.
func (f *ChainGatewayFacade) Balance(ctx context.Context, address string, currency models.Currency) (decimal.Decimal, error) {
	reply, err := f.client.GetBalance(ctx, &GetBalanceRequest{Address: address, Currency: currency})
	if err != nil {
		logger.Log.Errorw("failed to fetch balance via gRPC", "address", address, "currency", currency, "error", err)
		return decimal.Zero, err
	}
	return reply.Balance, nil
}

func fromReply(reply *TransferReply) models.TransferResult {
	switch reply.State {
	case TransferStateConfirmed:
		return models.TransferResult{Status: models.TransferStatusSuccess, TransactionHash: reply.TransactionHash}
	case TransferStateFailed, TransferStateNotFound:
		return models.TransferResult{Status: models.TransferStatusFailed, Error: reply.Error}
	default:
		return models.TransferResult{Status: models.TransferStatusAmbiguous, TransactionHash: reply.TransactionHash, Error: reply.Error}
	}
}

// classify maps a gRPC error to a transfer outcome. Only codes that prove the
// gateway rejected the request count as failed.
func classify(err error) models.TransferStatus {
	switch status.Code(err) {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.PermissionDenied,
		codes.ResourceExhausted, codes.NotFound, codes.Unauthenticated:
		return models.TransferStatusFailed
	default:
		return models.TransferStatusAmbiguous
	}
}
