package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/utils"
)

type ProfileController struct {
	Repo *repository.UserRepository
}

func NewProfileController(r *repository.UserRepository) *ProfileController {
	return &ProfileController{Repo: r}
}

type buyerProfileIn struct {
	BuyerType       string `json:"buyerType" binding:"omitempty,oneof=individual restaurant retailer processor exporter institution"`
	BusinessName    string `json:"businessName"`
	CountyID        uint   `json:"countyId" binding:"required"`
	SubCountyID     uint   `json:"subCountyId"`
	WardID          uint   `json:"wardId"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	MpesaNumber     string `json:"mpesaNumber" binding:"required"`
}

// PUT /profile/buyer — create or update the buyer profile.
func (h *ProfileController) UpsertBuyer(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req buyerProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Repo.BuyerProfileByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = &entity.BuyerProfile{UserID: uid, IsActive: true}
	} else if err != nil {
		resp.Error(c, err)
		return
	}
	if req.BuyerType != "" {
		p.BuyerType = req.BuyerType
	}
	p.BusinessName = req.BusinessName
	p.CountyID = req.CountyID
	p.SubCountyID = req.SubCountyID
	p.WardID = req.WardID
	p.DeliveryAddress = req.DeliveryAddress
	p.MpesaNumber = req.MpesaNumber

	if err := h.Repo.SaveBuyerProfile(p); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

type farmerProfileIn struct {
	FarmName         string          `json:"farmName" binding:"required"`
	FarmSize         decimal.Decimal `json:"farmSize"`
	FarmType         string          `json:"farmType" binding:"omitempty,oneof=crops livestock poultry dairy mixed organic greenhouse"`
	CountyID         uint            `json:"countyId" binding:"required"`
	SubCountyID      uint            `json:"subCountyId"`
	WardID           uint            `json:"wardId"`
	SpecificLocation string          `json:"specificLocation"`
	MpesaNumber      string          `json:"mpesaNumber" binding:"required"`
	Description      string          `json:"description"`
}

// PUT /profile/farmer
func (h *ProfileController) UpsertFarmer(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req farmerProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Repo.FarmerProfileByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = &entity.FarmerProfile{UserID: uid, IsActive: true}
	} else if err != nil {
		resp.Error(c, err)
		return
	}
	p.FarmName = req.FarmName
	p.FarmSize = req.FarmSize
	if req.FarmType != "" {
		p.FarmType = req.FarmType
	}
	p.CountyID = req.CountyID
	p.SubCountyID = req.SubCountyID
	p.WardID = req.WardID
	p.SpecificLocation = req.SpecificLocation
	p.MpesaNumber = req.MpesaNumber
	p.Description = req.Description

	if err := h.Repo.SaveFarmerProfile(p); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

type transporterProfileIn struct {
	BusinessName        string          `json:"businessName"`
	VehicleType         string          `json:"vehicleType" binding:"required,oneof=motorcycle tuk_tuk pickup van truck lorry"`
	VehicleRegistration string          `json:"vehicleRegistration" binding:"required"`
	VehicleCapacity     decimal.Decimal `json:"vehicleCapacity"`
	BaseCountyID        uint            `json:"baseCountyId" binding:"required"`
	RatePerKm           decimal.Decimal `json:"ratePerKm"`
	MpesaNumber         string          `json:"mpesaNumber" binding:"required"`
	DrivingLicense      string          `json:"drivingLicense" binding:"required"`
}

// PUT /profile/transporter
func (h *ProfileController) UpsertTransporter(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req transporterProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Repo.TransporterProfileByUser(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = &entity.TransporterProfile{UserID: uid, IsActive: true, IsAvailable: true}
	} else if err != nil {
		resp.Error(c, err)
		return
	}
	p.BusinessName = req.BusinessName
	p.VehicleType = req.VehicleType
	p.VehicleRegistration = req.VehicleRegistration
	p.VehicleCapacity = req.VehicleCapacity
	p.BaseCountyID = req.BaseCountyID
	p.RatePerKm = req.RatePerKm
	p.MpesaNumber = req.MpesaNumber
	p.DrivingLicense = req.DrivingLicense

	if err := h.Repo.SaveTransporterProfile(p); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}
