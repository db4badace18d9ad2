package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Kariqs/hanythrift-api/dbtest"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type memoryImageStore struct {
	keys   []string
	bodies []string
	err    error
}

func (m *memoryImageStore) PutProductImage(_ context.Context, key string, img services.ImageUpload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	b, _ := io.ReadAll(img.Body)
	m.keys = append(m.keys, key)
	m.bodies = append(m.bodies, string(b))
	return "https://cdn.example.com/" + key, nil
}

type CatalogStoreTestSuite struct {
	suite.Suite
	db      *gorm.DB
	images  *memoryImageStore
	catalog *services.CatalogStore
	seller  models.User
	buyer   models.User
}

func (s *CatalogStoreTestSuite) SetupTest() {
	s.db = dbtest.Open(s.T())
	s.images = &memoryImageStore{}
	s.catalog = services.NewCatalogStore(s.db, s.images)
	s.catalog.SetClock(func() time.Time { return time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC) })
	s.seller = dbtest.CreateUser(s.T(), s.db, "seller@example.com", true)
	s.buyer = dbtest.CreateUser(s.T(), s.db, "buyer@example.com", false)
}

func TestCatalogStoreTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogStoreTestSuite))
}

func (s *CatalogStoreTestSuite) TestListPaginatesInInsertionOrder() {
	first := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Flannel Shirt", "750.00")
	second := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Silk Blouse", "899.99")
	third := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Bucket Hat", "650.00")

	all, err := s.catalog.List(context.Background(), 0, 100)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]uint{first.ID, second.ID, third.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})

	page, err := s.catalog.List(context.Background(), 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(second.ID, page[0].ID)
	s.True(page[0].Price.Equal(decimal.RequireFromString("899.99")))

	empty, err := s.catalog.List(context.Background(), 10, 5)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	_, err = s.catalog.List(context.Background(), -1, 5)
	s.ErrorIs(err, services.ErrInvalidInput)
}

func (s *CatalogStoreTestSuite) TestGet() {
	p := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Wool Beanie", "450.00")

	got, err := s.catalog.Get(context.Background(), p.ID)
	s.Require().NoError(err)
	s.Equal("Wool Beanie", got.Name)

	_, err = s.catalog.Get(context.Background(), p.ID+1)
	s.ErrorIs(err, services.ErrNotFound)
}

func (s *CatalogStoreTestSuite) TestCreateBySeller() {
	in := models.ProductCreate{
		Name:        "Cargo Pants",
		Description: "Olive green",
		Price:       decimal.RequireFromString("950.00"),
		Category:    "Bottoms",
		Stock:       5,
	}

	p, err := s.catalog.Create(context.Background(), &s.seller, in)
	s.Require().NoError(err)
	s.NotZero(p.ID)
	s.Equal(s.seller.ID, p.SellerID)
	s.True(p.Price.Equal(in.Price))
}

func (s *CatalogStoreTestSuite) TestCreateByNonSellerLeavesCatalogUnchanged() {
	in := models.ProductCreate{Name: "x", Description: "y", Price: decimal.NewFromInt(1), Category: "z"}

	_, err := s.catalog.Create(context.Background(), &s.buyer, in)
	s.ErrorIs(err, services.ErrForbidden)

	var count int64
	s.Require().NoError(s.db.Model(&models.Product{}).Count(&count).Error)
	s.Zero(count)
}

func (s *CatalogStoreTestSuite) TestCreateRejectsBadValues() {
	_, err := s.catalog.Create(context.Background(), &s.seller, models.ProductCreate{Name: "x", Price: decimal.Zero})
	s.ErrorIs(err, services.ErrInvalidInput)

	_, err = s.catalog.Create(context.Background(), &s.seller, models.ProductCreate{Name: "x", Price: decimal.NewFromInt(1), Stock: -1})
	s.ErrorIs(err, services.ErrInvalidInput)
}

func (s *CatalogStoreTestSuite) TestCreateRejectsPricesTheColumnCannotHold() {
	for _, price := range []string{"0.004", "899.999", "123456789012.5", "10000000000.00"} {
		_, err := s.catalog.Create(context.Background(), &s.seller, models.ProductCreate{Name: "x", Price: decimal.RequireFromString(price)})
		s.ErrorIs(err, services.ErrInvalidInput, price)
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Product{}).Count(&count).Error)
	s.Zero(count)

	p, err := s.catalog.Create(context.Background(), &s.seller, models.ProductCreate{Name: "x", Price: decimal.RequireFromString("9999999999.99")})
	s.Require().NoError(err)
	s.Equal("9999999999.99", p.Price.StringFixed(2))
}

func (s *CatalogStoreTestSuite) TestAttachImage() {
	p := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Leather Belt", "850.00")

	got, err := s.catalog.AttachImage(context.Background(), &s.seller, p.ID, services.ImageUpload{
		Filename:    "../belt.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpeg"),
	})
	s.Require().NoError(err)

	key := "products/" + itoa(p.ID) + "/20261001093000-belt.jpg"
	s.Equal([]string{key}, s.images.keys)
	s.Equal([]string{"jpeg"}, s.images.bodies)
	s.Equal("https://cdn.example.com/"+key, got.ImageURL)

	stored, err := s.catalog.Get(context.Background(), p.ID)
	s.Require().NoError(err)
	s.Equal(got.ImageURL, stored.ImageURL)
}

func (s *CatalogStoreTestSuite) TestAttachImageOwnershipAndRole() {
	other := dbtest.CreateUser(s.T(), s.db, "other-seller@example.com", true)
	p := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Leather Belt", "850.00")
	img := services.ImageUpload{Filename: "a.png", Body: strings.NewReader("")}

	_, err := s.catalog.AttachImage(context.Background(), &s.buyer, p.ID, img)
	s.ErrorIs(err, services.ErrForbidden)

	_, err = s.catalog.AttachImage(context.Background(), &other, p.ID, img)
	s.ErrorIs(err, services.ErrNotFound)

	_, err = s.catalog.AttachImage(context.Background(), &s.seller, p.ID+50, img)
	s.ErrorIs(err, services.ErrNotFound)

	s.Empty(s.images.keys)
}

func (s *CatalogStoreTestSuite) TestAttachImageFailures() {
	p := dbtest.CreateProduct(s.T(), s.db, s.seller.ID, "Leather Belt", "850.00")
	img := services.ImageUpload{Filename: "a.png", Body: strings.NewReader("")}

	unconfigured := services.NewCatalogStore(s.db, nil)
	_, err := unconfigured.AttachImage(context.Background(), &s.seller, p.ID, img)
	s.ErrorIs(err, services.ErrUnavailable)

	s.images.err = errors.New("bucket gone")
	_, err = s.catalog.AttachImage(context.Background(), &s.seller, p.ID, img)
	s.ErrorContains(err, "bucket gone")

	stored, err := s.catalog.Get(context.Background(), p.ID)
	s.Require().NoError(err)
	s.Empty(stored.ImageURL)
}
