package contract

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"math/big"
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goccy/go-json"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

const (
	ledgerRecordKeyFormat = "%s_record_%s"
	ledgerIndexKeyFormat  = "%s_index_%020d"
	ledgerIndexPrefix     = "%s_index_"
	ledgerSeqKeyFormat    = "%s_seq"
	ledgerHeightKey       = "height_latest"

	ledgerTxBaseGas      = 21000
	ledgerZeroByteGas    = 4
	ledgerNonZeroByteGas = 16
	ledgerStorageWordGas = 20000
)

type ledgerRecord struct {
	FullName     string   `json:"fullname"`
	Age          uint64   `json:"age"`
	Gender       string   `json:"gender"`
	MedicalID    string   `json:"medical_id"`
	BloodType    string   `json:"blood_type"`
	Organs       []string `json:"organs"`
	Weight       uint64   `json:"weight"`
	Height       uint64   `json:"height"`
	UrgencyLevel uint64   `json:"urgency_level,omitempty"`
	Sender       string   `json:"sender"`
}

// ledgerBackend emulates the registry contract on leveldb for local development.
// Like the contract it stands in for, a write overwrites the record stored under the
// medical id and appends the id to the role's id list without checking for duplicates.
type ledgerBackend struct {
	Log      *zap.Logger
	db       *leveldb.DB
	abi      abi.ABI
	address  string
	identity string
	mu       sync.Mutex
}

func NewLedgerBackend(logger *zap.Logger, db *leveldb.DB, parsedABI abi.ABI, address, identity string) contracts.ContractBackend {
	return &ledgerBackend{
		Log:      logger,
		db:       db,
		abi:      parsedABI,
		address:  address,
		identity: identity,
	}
}

func (b *ledgerBackend) Identity() string {
	return b.identity
}

func (b *ledgerBackend) Address() string {
	return b.address
}

func (b *ledgerBackend) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if _, err := b.abi.Pack(method, args...); err != nil {
		return nil, exceptions.ErrContractCall(err, method)
	}

	switch method {
	case MethodGetDonor, MethodGetPatient:
		record, _, err := b.getRecord(roleOf(method), args[0].(string))
		if err != nil {
			return nil, exceptions.ErrLedgerStore(err)
		}
		return record.tuple(), nil
	case MethodValidateDonor, MethodValidatePatient:
		_, found, err := b.getRecord(roleOf(method), args[0].(string))
		if err != nil {
			return nil, exceptions.ErrLedgerStore(err)
		}
		return []interface{}{found}, nil
	case MethodGetCountOfDonors, MethodGetCountOfPatients:
		count, err := b.getCounter(fmt.Sprintf(ledgerSeqKeyFormat, roleOf(method)))
		if err != nil {
			return nil, exceptions.ErrLedgerStore(err)
		}
		return []interface{}{new(big.Int).SetUint64(count)}, nil
	case MethodGetAllDonorIDs, MethodGetAllPatientIDs:
		ids, err := b.listIDs(roleOf(method))
		if err != nil {
			return nil, exceptions.ErrLedgerStore(err)
		}
		return []interface{}{ids}, nil
	}
	return nil, exceptions.ErrContractUnknownMethod(method)
}

func (b *ledgerBackend) EstimateGas(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	input, err := b.abi.Pack(method, args...)
	if err != nil {
		return 0, exceptions.ErrContractEstimateGas(err, method)
	}
	return ledgerGas(input), nil
}

func (b *ledgerBackend) Transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*models.RegistrationResult, error) {
	if b.identity == "" {
		return nil, exceptions.ErrWalletNotConnected(nil)
	}
	if method != MethodSetDonors && method != MethodSetPatients {
		return nil, exceptions.ErrContractUnknownMethod(method)
	}

	input, err := b.abi.Pack(method, args...)
	if err != nil {
		return nil, exceptions.ErrContractTransact(err, method)
	}
	gasUsed := ledgerGas(input)
	if gasLimit < gasUsed {
		return nil, exceptions.ErrContractTransact(fmt.Errorf("out of gas: limit %d below required %d", gasLimit, gasUsed), method)
	}

	// Decode what was packed so the stored record is exactly what a node would see.
	values, err := b.abi.Methods[method].Inputs.Unpack(input[4:])
	if err != nil {
		return nil, exceptions.ErrContractTransact(err, method)
	}
	record, err := recordFromInputs(values)
	if err != nil {
		return nil, exceptions.ErrContractTransact(err, method)
	}
	record.Sender = b.identity

	data, err := json.Marshal(record)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	role := roleOf(method)

	b.mu.Lock()
	defer b.mu.Unlock()

	seqKey := fmt.Sprintf(ledgerSeqKeyFormat, role)
	seq, err := b.getCounter(seqKey)
	if err != nil {
		return nil, exceptions.ErrLedgerStore(err)
	}
	height, err := b.getCounter(ledgerHeightKey)
	if err != nil {
		return nil, exceptions.ErrLedgerStore(err)
	}
	height++

	batch := new(leveldb.Batch)
	batch.Put([]byte(fmt.Sprintf(ledgerRecordKeyFormat, role, record.MedicalID)), data)
	batch.Put([]byte(fmt.Sprintf(ledgerIndexKeyFormat, role, seq)), []byte(record.MedicalID))
	batch.Put([]byte(seqKey), []byte(strconv.FormatUint(seq+1, 10)))
	batch.Put([]byte(ledgerHeightKey), []byte(strconv.FormatUint(height, 10)))
	if err := b.db.Write(batch, nil); err != nil {
		return nil, exceptions.ErrLedgerStore(err)
	}

	heightBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBytes, height)
	txHash := crypto.Keccak256Hash(input, heightBytes)

	b.Log.Info("ledgerBackend.Transact committed",
		zap.String(constvars.LoggingRoleKey, role),
		zap.String(constvars.LoggingMedicalIDKey, record.MedicalID),
		zap.String(constvars.LoggingTxHashKey, txHash.Hex()),
		zap.Uint64(constvars.LoggingBlockNumberKey, height),
	)

	return &models.RegistrationResult{
		TxHash:      txHash.Hex(),
		BlockNumber: height,
		GasUsed:     gasUsed,
		GasLimit:    gasLimit,
	}, nil
}

func (b *ledgerBackend) Close() error {
	return b.db.Close()
}

func (b *ledgerBackend) getRecord(role, medicalID string) (*ledgerRecord, bool, error) {
	data, err := b.db.Get([]byte(fmt.Sprintf(ledgerRecordKeyFormat, role, medicalID)), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		// An unknown id reads as the zero-valued struct, as a contract mapping does.
		return &ledgerRecord{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var record ledgerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

func (b *ledgerBackend) getCounter(key string) (uint64, error) {
	data, err := b.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(data), 10, 64)
}

func (b *ledgerBackend) listIDs(role string) ([]string, error) {
	iter := b.db.NewIterator(util.BytesPrefix([]byte(fmt.Sprintf(ledgerIndexPrefix, role))), nil)
	defer iter.Release()

	ids := []string{}
	for iter.Next() {
		ids = append(ids, string(iter.Value()))
	}
	return ids, iter.Error()
}

func (r *ledgerRecord) tuple() []interface{} {
	organs := r.Organs
	if organs == nil {
		organs = []string{}
	}
	return []interface{}{
		r.FullName,
		new(big.Int).SetUint64(r.Age),
		r.Gender,
		r.BloodType,
		organs,
		new(big.Int).SetUint64(r.Weight),
		new(big.Int).SetUint64(r.Height),
	}
}

// recordFromInputs maps unpacked setDonors/setPatients arguments by position.
func recordFromInputs(values []interface{}) (*ledgerRecord, error) {
	var (
		record ledgerRecord
		err    error
	)
	if record.FullName, err = TupleString(values, 0); err != nil {
		return nil, err
	}
	if record.Age, err = TupleUint64(values, 1); err != nil {
		return nil, err
	}
	if record.Gender, err = TupleString(values, 2); err != nil {
		return nil, err
	}
	if record.MedicalID, err = TupleString(values, 3); err != nil {
		return nil, err
	}
	if record.BloodType, err = TupleString(values, 4); err != nil {
		return nil, err
	}
	if record.Organs, err = TupleStrings(values, 5); err != nil {
		return nil, err
	}
	if record.Weight, err = TupleUint64(values, 6); err != nil {
		return nil, err
	}
	if record.Height, err = TupleUint64(values, 7); err != nil {
		return nil, err
	}
	if len(values) > 8 {
		if record.UrgencyLevel, err = TupleUint64(values, 8); err != nil {
			return nil, err
		}
	}
	return &record, nil
}

func roleOf(method string) string {
	switch method {
	case MethodSetPatients, MethodGetPatient, MethodValidatePatient, MethodGetCountOfPatients, MethodGetAllPatientIDs:
		return string(models.RolePatient)
	}
	return string(models.RoleDonor)
}

// ledgerGas approximates execution cost from calldata size: base transaction cost,
// per-byte calldata cost, and one storage write per 32-byte word.
func ledgerGas(input []byte) uint64 {
	gas := uint64(ledgerTxBaseGas)
	for _, c := range input {
		if c == 0 {
			gas += ledgerZeroByteGas
		} else {
			gas += ledgerNonZeroByteGas
		}
	}
	words := uint64(len(input)+31) / 32
	return gas + words*ledgerStorageWordGas
}
