package employee

import (
	"context"
	"fmt"
	"strings"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員名簿に関するユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は社員名簿ユースケースの公開インターフェースです。
type UseCase interface {
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID int
}

// GetEmployee は ID で社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id %d: %w", in.ID, ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := validateEmployee(found); err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は名簿に登録された全社員を取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		for _, emp := range found {
			if err := validateEmployee(emp); err != nil {
				return err
			}
		}
		employees = found
		return nil
	}); err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []*Employee{}
	}
	return employees, nil
}

func validateEmployee(emp *Employee) error {
	if emp == nil {
		return ErrEmployeeNotFound
	}
	if emp.ID <= 0 {
		return fmt.Errorf("id %d: %w", emp.ID, ErrInvalidID)
	}
	if strings.TrimSpace(emp.FullName) == "" {
		return fmt.Errorf("employee %d: %w", emp.ID, ErrInvalidFullName)
	}
	if emp.HourlyRate.IsNegative() {
		return fmt.Errorf("employee %d: %w", emp.ID, ErrInvalidHourlyRate)
	}
	return nil
}
