package gotchi

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Backend is the subset of an Ethereum RPC provider the binding needs:
// contract calls, transaction broadcast, and receipt lookup. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client is a handle on a deployed CollateralFacet. It is stateless beyond
// its configuration and safe for concurrent use.
type Client struct {
	address     common.Address
	backend     Backend
	contract    *bind.BoundContract
	signer      *bind.TransactOpts
	log         zerolog.Logger
	waitTimeout time.Duration
	closeFn     func()
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSigner sets the transactor used for write operations. Without it the
// client is read-only and writes fail with ErrNoSigner.
func WithSigner(signer *bind.TransactOpts) ClientOption {
	return func(c *Client) {
		c.signer = signer
	}
}

// WithLogger sets a logger for call and transaction lifecycle events.
// The default logger discards everything.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithWaitTimeout bounds how long a write operation waits for its
// transaction to be mined. Zero (the default) waits until the context is
// done.
func WithWaitTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.waitTimeout = d
	}
}

// NewClient creates a Client for the facet deployed at address, using an
// already-connected backend.
func NewClient(address common.Address, backend Backend, opts ...ClientOption) *Client {
	c := &Client{
		address: address,
		backend: backend,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.contract = bind.NewBoundContract(address, facetABI, backend, backend, backend)
	return c
}

// Dial connects to an RPC endpoint and returns a Client for the facet
// deployed at address. Close releases the connection.
func Dial(ctx context.Context, rawurl string, address common.Address, opts ...ClientOption) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	c := NewClient(address, ec, opts...)
	c.closeFn = ec.Close
	return c, nil
}

// Close releases the underlying RPC connection if the client owns one.
// Clients built with NewClient over a caller-owned backend are unaffected.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Address returns the deployed facet address.
func (c *Client) Address() common.Address {
	return c.address
}

// Backend returns the RPC provider the client was built on.
func (c *Client) Backend() Backend {
	return c.backend
}
