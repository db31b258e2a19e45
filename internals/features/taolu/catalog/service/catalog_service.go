package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wushuku_backend/internals/features/taolu/catalog/model"
)

/* =========================================================
   Accessor read-only katalog.
   Core taolu memakai ini untuk VALIDASI saja; penulisan
   katalog bukan urusan core (eksternal, via seeder).
   ========================================================= */

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// GetForm mengambil satu form; 400 kalau tidak dikenal (input tidak valid).
func (s *CatalogService) GetForm(id uuid.UUID) (*model.TaoluFormModel, error) {
	var m model.TaoluFormModel
	if err := s.DB.Where("taolu_form_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Form tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil form")
	}
	return &m, nil
}

// GetDeductionCode mengambil satu kode deduction; 400 kalau tidak dikenal.
func (s *CatalogService) GetDeductionCode(id uuid.UUID) (*model.TaoluDeductionCodeModel, error) {
	var m model.TaoluDeductionCodeModel
	if err := s.DB.Where("taolu_deduction_code_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Kode deduction tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kode deduction")
	}
	return &m, nil
}

func (s *CatalogService) ListForms() ([]model.TaoluFormModel, error) {
	var out []model.TaoluFormModel
	if err := s.DB.Order("taolu_form_name ASC").Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar form")
	}
	return out, nil
}

func (s *CatalogService) ListDeductionCodes() ([]model.TaoluDeductionCodeModel, error) {
	var out []model.TaoluDeductionCodeModel
	if err := s.DB.Order("taolu_deduction_code_number ASC").Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kode")
	}
	return out, nil
}

func (s *CatalogService) ListAgeGroups() ([]model.TaoluAgeGroupModel, error) {
	var out []model.TaoluAgeGroupModel
	if err := s.DB.Order("taolu_age_group_min_age ASC").Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kelompok umur")
	}
	return out, nil
}
