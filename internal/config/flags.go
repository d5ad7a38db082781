package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("sqlite3" or "pgx")
//	-remote-uri base URI of the remote case service
//	-remote-user user half of the remote apikey credential
//	-remote-key secret half of the remote apikey credential
//	-remote-timeout remote request timeout (e.g., "30s")
//	-page-limit remote listing page size
//	-sync-interval period between reconciliation cycles (e.g., "5s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var remoteURI string
	var remoteUser string
	var remoteKey string
	var remoteTimeout time.Duration
	var pageLimit int
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&remoteURI, "remote-uri", "", "Remote case service base URI")
	flag.StringVar(&remoteUser, "remote-user", "", "Remote API user")
	flag.StringVar(&remoteKey, "remote-key", "", "Remote API key")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 30s)")
	flag.IntVar(&pageLimit, "page-limit", 0, "Remote listing page size")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync cycle interval (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURI:   remoteURI,
			APIUser:   remoteUser,
			APIKey:    remoteKey,
			Timeout:   remoteTimeout,
			PageLimit: pageLimit,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
