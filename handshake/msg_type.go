// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

type ContentType byte

const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)

func ContentTypeToName(t ContentType) string {
	switch t {
	case ContentTypeChangeCipherSpec:
		return "ChangeCipherSpec"
	case ContentTypeAlert:
		return "Alert"
	case ContentTypeHandshake:
		return "Handshake"
	case ContentTypeApplicationData:
		return "ApplicationData"
	default:
		return "<unknown>"
	}
}

type MsgType byte

const (
	MsgTypeHelloRequest       MsgType = 0 // advertised-only renegotiation lives and dies here
	MsgTypeClientHello        MsgType = 1
	MsgTypeServerHello        MsgType = 2
	MsgTypeCertificate        MsgType = 11
	MsgTypeServerKeyExchange  MsgType = 12
	MsgTypeCertificateRequest MsgType = 13
	MsgTypeServerHelloDone    MsgType = 14
	MsgTypeCertificateVerify  MsgType = 15
	MsgTypeClientKeyExchange  MsgType = 16
	MsgTypeFinished           MsgType = 20
)

func MsgTypeToName(t MsgType) string {
	switch t {
	case MsgTypeHelloRequest:
		return "HelloRequest"
	case MsgTypeClientHello:
		return "ClientHello"
	case MsgTypeServerHello:
		return "ServerHello"
	case MsgTypeCertificate:
		return "Certificate"
	case MsgTypeServerKeyExchange:
		return "ServerKeyExchange"
	case MsgTypeCertificateRequest:
		return "CertificateRequest"
	case MsgTypeServerHelloDone:
		return "ServerHelloDone"
	case MsgTypeCertificateVerify:
		return "CertificateVerify"
	case MsgTypeClientKeyExchange:
		return "ClientKeyExchange"
	case MsgTypeFinished:
		return "Finished"
	default:
		return "<unknown>"
	}
}
