package employee

import "context"

// Repository は社員名簿の参照を行う抽象です。
type Repository interface {
	FindByID(ctx context.Context, id int) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}
