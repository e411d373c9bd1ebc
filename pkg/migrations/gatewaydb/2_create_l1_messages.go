package gatewaydb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
	mghelper "github.com/chainsafe/token-gateway/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &gatewaystore.MessageDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &gatewaystore.MessageDao{}, "call_seq", "l1_token", "recipient")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &gatewaystore.MessageDao{})
	})
}
