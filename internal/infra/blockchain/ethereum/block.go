package ethereum

import (
	"context"

	"github.com/ad402/payverify/internal/payverify"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BlockResponse is the header part of a block returned by eth_getBlockByNumber
// when transactions are not requested in full.
type BlockResponse struct {
	Hash       common.Hash    `json:"hash"`
	ParentHash common.Hash    `json:"parentHash"`
	Number     hexutil.Uint64 `json:"number"`
	Timestamp  hexutil.Uint64 `json:"timestamp"`
}

func (b BlockResponse) toBlock() payverify.Block {
	return payverify.Block{
		Number:    uint64(b.Number),
		Timestamp: uint64(b.Timestamp),
	}
}

// BlockNumber implements payverify.ChainClient.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	var number hexutil.Uint64
	if err := c.call(ctx, &number, "eth_blockNumber"); err != nil {
		return 0, err
	}

	return uint64(number), nil
}

// BlockByNumber implements payverify.ChainClient.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (payverify.Block, error) {
	var block BlockResponse
	if err := c.call(ctx, &block, "eth_getBlockByNumber", hexutil.Uint64(number), false); err != nil {
		return payverify.Block{}, err
	}

	return block.toBlock(), nil
}
