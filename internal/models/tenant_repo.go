package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetTenantBySlug looks up a tenant workspace by its exact slug. Matching is
// case-sensitive: "Acme" and "acme" are different keys.
func (mdb *MongodbRepo) GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error) {
	col, err := mdb.GetCollection(ctx, DbName, TenantsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var tenant Tenant
	err = col.FindOne(ctx, bson.M{"slug": slug}).Decode(&tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("error fetching tenant %q: %w", slug, err)
	}

	return &tenant, nil
}
