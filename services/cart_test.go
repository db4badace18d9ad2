package services_test

import (
	"context"
	"testing"

	"github.com/Kariqs/hanythrift-api/dbtest"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartEngineTestSuite struct {
	suite.Suite
	db      *gorm.DB
	cart    *services.CartEngine
	alice   models.User
	bob     models.User
	shirt   models.Product
	sneaker models.Product
}

func (s *CartEngineTestSuite) SetupTest() {
	s.db = dbtest.Open(s.T())
	s.cart = services.NewCartEngine(s.db)
	seller := dbtest.CreateUser(s.T(), s.db, "seller@example.com", true)
	s.alice = dbtest.CreateUser(s.T(), s.db, "alice@example.com", false)
	s.bob = dbtest.CreateUser(s.T(), s.db, "bob@example.com", false)
	s.shirt = dbtest.CreateProduct(s.T(), s.db, seller.ID, "Flannel Shirt", "750.00")
	s.sneaker = dbtest.CreateProduct(s.T(), s.db, seller.ID, "Vans Old Skool", "1800.00")
}

func TestCartEngineTestSuite(t *testing.T) {
	suite.Run(t, new(CartEngineTestSuite))
}

func (s *CartEngineTestSuite) add(user models.User, product models.Product, qty int) *models.CartItem {
	item, err := s.cart.Add(context.Background(), user.ID, models.CartItemCreate{ProductID: product.ID, Quantity: qty})
	s.Require().NoError(err)
	return item
}

func (s *CartEngineTestSuite) TestAddMergesQuantities() {
	first := s.add(s.alice, s.shirt, 2)
	s.Equal(2, first.Quantity)
	s.Equal("Flannel Shirt", first.Product.Name)

	second := s.add(s.alice, s.shirt, 3)
	s.Equal(first.ID, second.ID)
	s.Equal(5, second.Quantity)
	s.Equal(s.shirt.ID, second.Product.ID)

	var count int64
	s.Require().NoError(s.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", s.alice.ID, s.shirt.ID).
		Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *CartEngineTestSuite) TestCartsArePerUser() {
	s.add(s.alice, s.shirt, 1)
	s.add(s.bob, s.shirt, 4)
	s.add(s.alice, s.sneaker, 1)

	items, err := s.cart.Get(context.Background(), s.alice.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(s.shirt.ID, items[0].ProductID)
	s.Equal(1, items[0].Quantity)
	s.Equal("Vans Old Skool", items[1].Product.Name)

	empty, err := s.cart.Get(context.Background(), s.bob.ID+s.alice.ID+100)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *CartEngineTestSuite) TestAddMissingProduct() {
	_, err := s.cart.Add(context.Background(), s.alice.ID, models.CartItemCreate{ProductID: s.sneaker.ID + 10, Quantity: 1})
	s.ErrorIs(err, services.ErrNotFound)

	_, err = s.cart.Add(context.Background(), s.alice.ID, models.CartItemCreate{ProductID: s.shirt.ID, Quantity: 0})
	s.ErrorIs(err, services.ErrInvalidInput)
}

func (s *CartEngineTestSuite) TestUpdate() {
	item := s.add(s.alice, s.shirt, 2)

	updated, err := s.cart.Update(context.Background(), s.alice.ID, item.ID, models.CartItemUpdate{Quantity: 7})
	s.Require().NoError(err)
	s.Equal(7, updated.Quantity)
	s.Equal("Flannel Shirt", updated.Product.Name)

	items, err := s.cart.Get(context.Background(), s.alice.ID)
	s.Require().NoError(err)
	s.Equal(7, items[0].Quantity)

	_, err = s.cart.Update(context.Background(), s.alice.ID, item.ID, models.CartItemUpdate{Quantity: 0})
	s.ErrorIs(err, services.ErrInvalidInput)
}

func (s *CartEngineTestSuite) TestOtherUsersItemsLookMissing() {
	item := s.add(s.alice, s.shirt, 2)

	_, err := s.cart.Update(context.Background(), s.bob.ID, item.ID, models.CartItemUpdate{Quantity: 9})
	s.ErrorIs(err, services.ErrNotFound)

	err = s.cart.Remove(context.Background(), s.bob.ID, item.ID)
	s.ErrorIs(err, services.ErrNotFound)

	_, err = s.cart.Update(context.Background(), s.alice.ID, item.ID+99, models.CartItemUpdate{Quantity: 9})
	s.ErrorIs(err, services.ErrNotFound)

	items, err := s.cart.Get(context.Background(), s.alice.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(2, items[0].Quantity)
}

func (s *CartEngineTestSuite) TestRemove() {
	item := s.add(s.alice, s.shirt, 2)

	s.Require().NoError(s.cart.Remove(context.Background(), s.alice.ID, item.ID))

	items, err := s.cart.Get(context.Background(), s.alice.ID)
	s.Require().NoError(err)
	s.Empty(items)

	err = s.cart.Remove(context.Background(), s.alice.ID, item.ID)
	s.ErrorIs(err, services.ErrNotFound)
}
