package contract

import (
	"context"
	"errors"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/exceptions"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContractBackend struct {
	mock.Mock
}

func (m *MockContractBackend) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	called := m.Called(ctx, method, args)
	out, _ := called.Get(0).([]interface{})
	return out, called.Error(1)
}

func (m *MockContractBackend) EstimateGas(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	called := m.Called(ctx, method, args)
	return called.Get(0).(uint64), called.Error(1)
}

func (m *MockContractBackend) Transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*models.RegistrationResult, error) {
	called := m.Called(ctx, gasLimit, method, args)
	result, _ := called.Get(0).(*models.RegistrationResult)
	return result, called.Error(1)
}

func (m *MockContractBackend) Identity() string { return m.Called().String(0) }
func (m *MockContractBackend) Address() string  { return m.Called().String(0) }
func (m *MockContractBackend) Close() error     { return m.Called().Error(0) }

func TestRegistryArguments(t *testing.T) {
	ctx := context.Background()

	t.Run("SetDonors Passes Eight Arguments In ABI Order", func(t *testing.T) {
		backend := new(MockContractBackend)
		donor := testDonor("DON-JAN-1234")
		expected := []interface{}{"Jane Doe", big.NewInt(30), "F", "DON-JAN-1234", "O+", []string{"Kidney", "Liver"}, big.NewInt(60), big.NewInt(170)}
		backend.On("Transact", ctx, uint64(1000000), MethodSetDonors, expected).
			Return(&models.RegistrationResult{TxHash: "0xabc"}, nil)

		result, err := NewRegistry(backend, nil).SetDonors(ctx, donor, 1000000)

		require.NoError(t, err)
		assert.Equal(t, "0xabc", result.TxHash)
		backend.AssertExpectations(t)
	})

	t.Run("SetPatients Appends Urgency", func(t *testing.T) {
		backend := new(MockContractBackend)
		patient := testDonor("PAT-JAN-1234")
		patient.UrgencyLevel = 5
		backend.On("EstimateGas", ctx, MethodSetPatients, mock.MatchedBy(func(args []interface{}) bool {
			return len(args) == 9 && args[8].(*big.Int).Int64() == 5
		})).Return(uint64(400000), nil)

		gas, err := NewRegistry(backend, nil).EstimateSetPatients(ctx, patient)

		require.NoError(t, err)
		assert.Equal(t, uint64(400000), gas)
	})
}

func TestRegistryDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("Validate Decodes Bool", func(t *testing.T) {
		backend := new(MockContractBackend)
		backend.On("Call", ctx, MethodValidatePatient, []interface{}{"PAT-JAN-1234"}).Return([]interface{}{true}, nil)

		found, err := NewRegistry(backend, nil).ValidatePatient(ctx, "PAT-JAN-1234")

		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Count Decodes Big Int", func(t *testing.T) {
		backend := new(MockContractBackend)
		backend.On("Call", ctx, MethodGetCountOfDonors, []interface{}(nil)).Return([]interface{}{big.NewInt(3)}, nil)

		count, err := NewRegistry(backend, nil).GetCountOfDonors(ctx)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
	})

	t.Run("Unexpected Type Is Internal Error", func(t *testing.T) {
		backend := new(MockContractBackend)
		backend.On("Call", ctx, MethodGetAllDonorIDs, []interface{}(nil)).Return([]interface{}{"not-a-list"}, nil)

		_, err := NewRegistry(backend, nil).GetAllDonorIDs(ctx)

		assert.True(t, exceptions.IsKind(err, exceptions.KindInternal))
	})

	t.Run("Backend Error Passes Through", func(t *testing.T) {
		backend := new(MockContractBackend)
		backend.On("Call", ctx, MethodValidateDonor, []interface{}{"DON-JAN-1234"}).
			Return(nil, exceptions.ErrContractCall(errors.New("connection refused"), MethodValidateDonor))

		_, err := NewRegistry(backend, nil).ValidateDonor(ctx, "DON-JAN-1234")

		assert.True(t, exceptions.IsKind(err, exceptions.KindConnectivity))
	})
}

func TestTupleHelpers(t *testing.T) {
	tuple := []interface{}{"Jane", big.NewInt(30), []string{"Kidney"}, true}

	name, err := TupleString(tuple, 0)
	require.NoError(t, err)
	assert.Equal(t, "Jane", name)

	age, err := TupleUint64(tuple, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), age)

	organs, err := TupleStrings(tuple, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kidney"}, organs)

	ok, err := TupleBool(tuple, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = TupleString(tuple, 1)
	assert.Error(t, err)
	_, err = TupleUint64(tuple, 9)
	assert.Error(t, err)
	_, err = TupleUint64([]interface{}{new(big.Int).Lsh(big.NewInt(1), 70)}, 0)
	assert.Error(t, err)
}
