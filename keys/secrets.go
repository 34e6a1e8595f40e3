// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package keys

import (
	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/handshake"
)

const MasterSecretLength = 48

const (
	labelMasterSecret   = "master secret"
	labelKeyExpansion   = "key expansion"
	labelClientFinished = "client finished"
	labelServerFinished = "server finished"
)

// Key material for one session. Randoms are set during the hello
// exchange, the master secret only after the ECDHE agreement; reading
// the master secret before that point is a programming error.
type SessionSecrets struct {
	ClientRandom [32]byte
	ServerRandom [32]byte

	masterSecret    [MasterSecretLength]byte
	masterSecretSet bool
}

func ForClient() SessionSecrets {
	return SessionSecrets{}
}

func (s *SessionSecrets) randoms() []byte {
	seed := make([]byte, 0, 64)
	seed = append(seed, s.ClientRandom[:]...)
	return append(seed, s.ServerRandom[:]...)
}

// randoms are swapped for key expansion [rfc5246:6.3]
func (s *SessionSecrets) randomsSwapped() []byte {
	seed := make([]byte, 0, 64)
	seed = append(seed, s.ServerRandom[:]...)
	return append(seed, s.ClientRandom[:]...)
}

func (s *SessionSecrets) InitFromPreMaster(suite ciphersuite.Suite, preMaster []byte) {
	if s.masterSecretSet {
		panic("master secret initialized twice")
	}
	master := PRF(suite, preMaster, labelMasterSecret, s.randoms(), MasterSecretLength)
	copy(s.masterSecret[:], master)
	s.masterSecretSet = true
}

func (s *SessionSecrets) MasterSecretSet() bool { return s.masterSecretSet }

// ComputeClientFinished and ComputeServerFinished bind the Finished
// payloads to the transcript hash at the moment of sending [rfc5246:7.4.9].
func (s *SessionSecrets) ComputeClientFinished(suite ciphersuite.Suite, transcriptHash []byte) (out [handshake.FinishedVerifyDataLength]byte) {
	s.computeFinished(suite, labelClientFinished, transcriptHash, out[:])
	return out
}

func (s *SessionSecrets) ComputeServerFinished(suite ciphersuite.Suite, transcriptHash []byte) (out [handshake.FinishedVerifyDataLength]byte) {
	s.computeFinished(suite, labelServerFinished, transcriptHash, out[:])
	return out
}

func (s *SessionSecrets) computeFinished(suite ciphersuite.Suite, label string, transcriptHash []byte, out []byte) {
	if !s.masterSecretSet {
		panic("finished computed before master secret")
	}
	copy(out, PRF(suite, s.masterSecret[:], label, transcriptHash, len(out)))
}

// KeyBlock cuts client/server write keys and IVs for the record
// protection layer. The handshake engine itself never encrypts.
func (s *SessionSecrets) KeyBlock(suite ciphersuite.Suite) (client ciphersuite.SymmetricKeys, server ciphersuite.SymmetricKeys) {
	if !s.masterSecretSet {
		panic("key block requested before master secret")
	}
	keyLen := suite.KeyLen()
	ivLen := suite.FixedIVLen()
	block := PRF(suite, s.masterSecret[:], labelKeyExpansion, s.randomsSwapped(), 2*keyLen+2*ivLen)

	clientKey := block[:keyLen]
	serverKey := block[keyLen : 2*keyLen]
	clientIV := block[2*keyLen : 2*keyLen+ivLen]
	serverIV := block[2*keyLen+ivLen:]

	client.Write = suite.NewAEAD(clientKey)
	copy(client.WriteIV[:], clientIV)
	server.Write = suite.NewAEAD(serverKey)
	copy(server.WriteIV[:], serverIV)
	return client, server
}
