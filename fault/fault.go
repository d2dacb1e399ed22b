// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConsistencyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised              = ExistsError("already initialised")
	BlockHeightMismatch             = InvalidError("block height does not follow the tip")
	BlockNotFound                   = NotFoundError("block not found")
	CertificateFileAlreadyExists    = ExistsError("certificate file already exists")
	ChainIsEmpty                    = NotFoundError("chain is empty")
	ConfigurationFileNotFound       = NotFoundError("configuration file not found")
	DatabaseIsNotSet                = ProcessError("database is not set")
	DatabaseVersionIncompatible     = ProcessError("database version is incompatible")
	FileNotFound                    = NotFoundError("file not found")
	InvalidBlockHeaderSize          = LengthError("invalid block header size")
	InvalidBlockHeaderTimestamp     = InvalidError("invalid block header timestamp")
	InvalidBlockHeaderVersion       = InvalidError("invalid block header version")
	InvalidChain                    = InvalidError("invalid chain")
	InvalidConfiguration            = InvalidError("configuration must return a table")
	InvalidCount                    = InvalidError("invalid count")
	InvalidCursor                   = InvalidError("invalid cursor")
	InvalidHexString                = InvalidError("invalid hex string")
	InvalidInitiator                = InvalidError("invalid initiator")
	InvalidIpAddress                = InvalidError("invalid IP address")
	InvalidKeyLength                = LengthError("key is too long")
	InvalidLoggerChannel            = InvalidError("invalid logger channel")
	InvalidMaxAge                   = InvalidError("maxage should be non-negative")
	InvalidMerkleRoot               = InvalidError("merkle root does not match transactions")
	InvalidNamespace                = InvalidError("invalid namespace id")
	InvalidNamespaceLength          = LengthError("namespace is too long")
	InvalidPagination               = InvalidError("from and nb should be non-negative")
	InvalidPortNumber               = InvalidError("invalid port number")
	InvalidPrivateKeyFile           = InvalidError("invalid private key file")
	InvalidPublicKeyFile            = InvalidError("invalid public key file")
	InvalidRegexp                   = InvalidError("invalid regular expression")
	InvalidStatSelector             = InvalidError("stat argument must be the literal string \"stat\"")
	InvalidTransaction              = InvalidError("invalid transaction")
	KevaDatabaseInconsistent        = ConsistencyError("keva database is inconsistent")
	KeyFileAlreadyExists            = ExistsError("key file already exists")
	MissingParameters               = InvalidError("missing parameters")
	NotInitialised                  = NotFoundError("not initialised")
	PoolEntryNotFound               = NotFoundError("pool entry not found")
	PreviousBlockDigestDoesNotMatch = InvalidError("previous block digest does not match")
	RateLimiting                    = InvalidError("rate limiting")
	TransactionAlreadyExists        = ExistsError("transaction already exists")
	TransactionCountMismatch        = InvalidError("transaction count does not match header")
	TransactionCountOutOfRange      = InvalidError("transaction count out of range")
	TransactionIsDuplicated         = ExistsError("transaction is duplicated in block")
	TransactionNotFound             = NotFoundError("transaction not found")
	UndoRecordNotFound              = ConsistencyError("undo record not found")
	UndoReplayFailed                = ConsistencyError("undo replay failed")
)

// transaction validation failures
var (
	DeleteWithNonKevaInput     = ValidationError("delete with previous input that is not a keva operation")
	DisplayNameTooLong         = ValidationError("display name value too long")
	GreedyName                 = ValidationError("greedy name")
	InputCoinNotFound          = ValidationError("failed to fetch input coin")
	KevaTxWithoutKevaOutput    = ValidationError("keva transaction has no keva outputs")
	KeyTooLong                 = ValidationError("key too long")
	MultipleKevaInputs         = ValidationError("multiple keva inputs into transaction")
	MultipleKevaOutputs        = ValidationError("multiple keva outputs from transaction")
	NamespaceConflict          = ValidationError("namespace already registered by an unconfirmed transaction")
	NamespaceMismatch          = ValidationError("update namespace mismatch to previous transaction")
	NamespaceNotDerived        = ValidationError("namespace is not derived from the first input")
	NamespaceTooLong           = ValidationError("namespace too long")
	NonKevaTxWithKevaInputs    = ValidationError("non-keva transaction has keva inputs")
	NonKevaTxWithKevaOutputs   = ValidationError("non-keva transaction has keva outputs")
	PutWithNonKevaInput        = ValidationError("put with previous input that is not a keva operation")
	TransactionHasNoInputs     = ValidationError("transaction has no inputs")
	UpdateWithoutKevaInput     = ValidationError("update without previous keva input")
	ValueTooLong               = ValidationError("value too long")
	OutPointAlreadySpentInPool = ValidationError("outpoint already spent by an unconfirmed transaction")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConsistencyError) Error() string { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e LengthError) Error() string      { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e ValidationError) Error() string  { return string(e) }

// determine the class of an error
func IsErrConsistency(e error) bool { _, ok := e.(ConsistencyError); return ok }
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool      { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrValidation(e error) bool  { _, ok := e.(ValidationError); return ok }
