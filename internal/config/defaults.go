package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "orders",
	Pass: "orders",
	Name: "orders_db",
}

var defaultKafka = Kafka{
	GroupID: "toyworks-orders",
	Topic:   "",
}

var defaultOrders = Orders{
	OverdueCheckInterval: time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default intake settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultOrders returns the default order-service settings.
func DefaultOrders() Orders {
	return defaultOrders
}

// DefaultRateLimit returns the default rate limiting settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
