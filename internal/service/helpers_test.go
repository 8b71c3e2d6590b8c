package service_test

import (
	"context"

	"eduman-backend/internal/mocks"

	"go.uber.org/mock/gomock"
)

// expectUnitOfWork makes the mock unit of work run its function with the caller's context
func expectUnitOfWork(uow *mocks.MockUnitOfWorkInterface) *gomock.Call {
	return uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}
