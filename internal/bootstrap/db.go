package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DBOptions struct {
	DSN       string
	ConnectTO time.Duration
	PingTO    time.Duration
}

func (o *DBOptions) defaults() {
	if o.ConnectTO == 0 {
		o.ConnectTO = 5 * time.Second
	}
	if o.PingTO == 0 {
		o.PingTO = 2 * time.Second
	}
}

// OpenPostgres opens a lib/pq backed pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, opt DBOptions) (*sql.DB, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	opt.defaults()

	db, err := sql.Open("postgres", opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

type MongoOptions struct {
	Host       string
	Port       int
	User       string
	Password   string
	AuthSource string
	ConnectTO  time.Duration
	PingTO     time.Duration
}

// MongoClientOptions builds driver options from host, port and optional credentials.
func MongoClientOptions(opt MongoOptions) *options.ClientOptions {
	co := options.Client().SetHosts([]string{net.JoinHostPort(opt.Host, strconv.Itoa(opt.Port))})
	if opt.ConnectTO > 0 {
		co.SetConnectTimeout(opt.ConnectTO)
	}

	if opt.User != "" {
		co.SetAuth(options.Credential{
			Username:   opt.User,
			Password:   opt.Password,
			AuthSource: opt.AuthSource,
		})
	}
	return co
}

// OpenMongo connects to MongoDB and pings the primary.
func OpenMongo(ctx context.Context, opt MongoOptions) (*mongo.Client, error) {
	if opt.Host == "" {
		return nil, fmt.Errorf("MONGO_HOST is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, MongoClientOptions(opt))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}
