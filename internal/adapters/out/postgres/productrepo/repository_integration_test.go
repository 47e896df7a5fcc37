package productrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	suite.database = pgtest.Start(context.Background(), suite.T())
	suite.repository = productrepo.NewGormProductRepository(suite.database.DB)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.database.Truncate(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.database.Stop(suite.T())
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct() *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:        "Plagiarism Check",
		Description: "Professional plagiarism check",
		Price:       75000,
		ImageURL:    "https://picsum.photos/seed/turnitin_service/400/300",
		IsService:   true,
	})
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddGetCount() {
	ctx := context.Background()
	p := suite.newProduct()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.Details(), loaded.Details())

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	err = suite.repository.Add(ctx, p)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	p := suite.newProduct()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	details := p.Details()
	details.Price = 80000
	details.IsService = false
	suite.Require().NoError(p.Update(details))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(80000), loaded.Price())
	suite.False(loaded.IsService())

	err = suite.repository.Update(ctx, suite.newProduct())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.newProduct()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
