package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Name                    = "mightypc_db"
	CollectionUsers         = "users"
	CollectionCPUs          = "cpus"
	CollectionGPUs          = "gpus"
	CollectionRAMs          = "rams"
	CollectionSSDs          = "ssds"
	CollectionHDDs          = "hdds"
	CollectionMotherboards  = "motherboards"
	CollectionPowerSupplies = "powersupplies"
	CollectionPcCases       = "cases"
	CollectionPCs           = "pcs"
	CollectionWorkstations  = "workstations"
)

type Database struct {
	*mongo.Database
}

func ConnectDB(ctx context.Context, dbURI string) (*mongo.Client, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURI))
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionUsers).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}
