package govkit_test

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// fakeBackend is a fake implementation of bind.ContractBackend. Read-only
// calls are answered from canned ABI-encoded outputs keyed by their calldata;
// submitted transactions are recorded for inspection.
type fakeBackend struct {
	// returns maps hex-encoded calldata (or, as a fallback, the hex-encoded
	// 4-byte selector) to the ABI-encoded output of the call.
	returns map[string][]byte

	// callErr, when set, fails every CallContract.
	callErr error

	// logs are returned verbatim from FilterLogs.
	logs []ethtypes.Log

	// filterErr, when set, fails every FilterLogs.
	filterErr error

	// sent records every transaction passed to SendTransaction.
	sent []*ethtypes.Transaction

	// sendErr, when set, fails every SendTransaction.
	sendErr error
}

var _ bind.ContractBackend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{returns: make(map[string][]byte)}
}

// cannedReturn registers an ABI-encoded output for the given calldata.
func (f *fakeBackend) cannedReturn(calldata, output []byte) {
	f.returns[hexutil.Encode(calldata)] = output
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	if out, ok := f.returns[hexutil.Encode(call.Data)]; ok {
		return out, nil
	}
	if len(call.Data) >= 4 {
		if out, ok := f.returns[hexutil.Encode(call.Data[:4])]; ok {
			return out, nil
		}
	}

	return nil, &unexpectedCallError{data: call.Data}
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*ethtypes.Header, error) {
	return &ethtypes.Header{}, nil
}

func (f *fakeBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 210_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *ethtypes.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)

	return nil
}

func (f *fakeBackend) FilterLogs(context.Context, ethereum.FilterQuery) ([]ethtypes.Log, error) {
	if f.filterErr != nil {
		return nil, f.filterErr
	}

	return f.logs, nil
}

func (f *fakeBackend) SubscribeFilterLogs(_ context.Context, _ ethereum.FilterQuery, _ chan<- ethtypes.Log) (ethereum.Subscription, error) {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	}), nil
}

type unexpectedCallError struct {
	data []byte
}

func (e *unexpectedCallError) Error() string {
	return "unexpected contract call: " + hexutil.Encode(e.data)
}
