package gotchi

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// mockBackend implements Backend in-memory. Reads are served from a table of
// pre-encoded outputs keyed by method selector; writes record the signed
// transaction and serve a canned receipt.
type mockBackend struct {
	mu      sync.Mutex
	outputs map[string][]byte
	callErr error

	lastCall    ethereum.CallMsg
	lastBlock   *big.Int
	pendingCall bool

	sentTx     *types.Transaction
	sendErr    error
	receipt    *types.Receipt
	receiptErr error
}

func newMockBackend() *mockBackend {
	return &mockBackend{outputs: make(map[string][]byte)}
}

// setOutput registers the ABI-encoded return values for a method.
func (b *mockBackend) setOutput(t *testing.T, method string, vals ...interface{}) {
	t.Helper()
	m, ok := facetABI.Methods[method]
	if !ok {
		t.Fatalf("unknown method %q", method)
	}
	data, err := m.Outputs.Pack(vals...)
	if err != nil {
		t.Fatalf("Failed to pack outputs for %q: %v", method, err)
	}
	b.outputs[string(m.ID)] = data
}

func (b *mockBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (b *mockBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCall = call
	b.lastBlock = blockNumber
	b.pendingCall = false
	return b.serve(call)
}

func (b *mockBackend) PendingCodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (b *mockBackend) PendingCallContract(ctx context.Context, call ethereum.CallMsg) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCall = call
	b.lastBlock = nil
	b.pendingCall = true
	return b.serve(call)
}

func (b *mockBackend) serve(call ethereum.CallMsg) ([]byte, error) {
	if b.callErr != nil {
		return nil, b.callErr
	}
	if len(call.Data) < 4 {
		return nil, fmt.Errorf("short calldata: %d bytes", len(call.Data))
	}
	out, ok := b.outputs[string(call.Data[:4])]
	if !ok {
		return nil, fmt.Errorf("no output registered for selector %x", call.Data[:4])
	}
	return out, nil
}

func (b *mockBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1)}, nil
}

func (b *mockBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 7, nil
}

func (b *mockBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (b *mockBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (b *mockBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 210_000, nil
}

func (b *mockBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sentTx = tx
	return nil
}

func (b *mockBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (b *mockBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (b *mockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if b.receiptErr != nil {
		return nil, b.receiptErr
	}
	if b.receipt == nil {
		return nil, ethereum.NotFound
	}
	return b.receipt, nil
}

var _ Backend = (*mockBackend)(nil)

var testAddress = common.HexToAddress("0x86935F11C86623deC8a25696E1C19a8659CbF95d")

// newTestSigner builds a keyed transactor with all gas fields fixed so the
// mock backend never has to estimate anything.
func newTestSigner(t *testing.T) *bind.TransactOpts {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(137))
	if err != nil {
		t.Fatalf("Failed to create transactor: %v", err)
	}
	auth.Nonce = big.NewInt(7)
	auth.GasPrice = big.NewInt(30_000_000_000)
	auth.GasLimit = 300_000
	return auth
}

// successReceipt returns a mined receipt for the last sent transaction.
func successReceipt() *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(42),
	}
}

// unpackInput decodes the calldata the mock captured for a method.
func unpackInput(t *testing.T, method string, data []byte) []interface{} {
	t.Helper()
	m := facetABI.Methods[method]
	if len(data) < 4 || string(data[:4]) != string(m.ID) {
		t.Fatalf("calldata does not start with %q selector", method)
	}
	args, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("Failed to unpack %q input: %v", method, err)
	}
	return args
}
