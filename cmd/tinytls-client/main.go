// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Dials a TLS 1.2 server, runs the handshake engine to completion and
// reports the negotiated parameters. The record protection layer is not
// part of the engine, so the tool stops after the Finished exchange.
package main

import (
	"log"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/tinytls/tinytls/tlscore"
	"github.com/tinytls/tinytls/verify"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: tinytls-client <hostname> <addr:port>")
	}
	hostname, addr := os.Args[1], os.Args[2]

	roots, err := verify.SystemRootCertStore()
	if err != nil {
		log.Fatalf("tinytls: %+v", err)
	}
	config := tlscore.NewConfig(roots)

	if err := run(config, hostname, addr); err != nil {
		log.Fatalf("tinytls: %+v", err)
	}
}

func run(config *tlscore.Config, hostname string, addr string) error {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return errors.Wrapf(err, "dialing %s", addr)
	}
	defer func() { _ = conn.Close() }()

	sess := tlscore.NewSession(config, hostname)
	log.Printf("%s: connecting to %s", sess, addr)

	for !sess.HandshakeComplete() {
		for sess.WantsWrite() {
			if err := sess.WriteTLS(conn); err != nil {
				return errors.Wrap(err, "writing handshake flight")
			}
		}
		if !sess.WantsRead() {
			break
		}
		if _, err := sess.ReadTLS(conn); err != nil {
			return errors.Wrap(err, "reading from server")
		}
		if err := sess.ProcessIncoming(); err != nil {
			return errors.Wrap(err, "handshake failed")
		}
	}

	log.Printf("%s: handshake complete", sess)
	return nil
}
