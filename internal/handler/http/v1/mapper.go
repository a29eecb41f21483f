package v1

import "github.com/shenikar/sos_dispatch_system/internal/models"

// ModelToSOSResponse преобразует доменную модель в DTO для ответа
func ModelToSOSResponse(model *models.SOS) *SOSResponse {
	return &SOSResponse{
		ID:         model.ID,
		UserID:     model.UserID,
		Type:       model.Type,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Status:     model.Status,
		HelperID:   model.HelperID,
		CreatedAt:  model.CreatedAt,
		AssignedAt: model.AssignedAt,
	}
}

// ModelsToSOSResponses преобразует слайс моделей в слайс DTO
func ModelsToSOSResponses(models []*models.SOS) []*SOSResponse {
	responses := make([]*SOSResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSOSResponse(model)
	}
	return responses
}

// ModelToAlertResponse преобразует оповещение в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		Title:       model.Title,
		Description: model.Description,
		Lat:         model.Lat,
		Lng:         model.Lng,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс оповещений в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// RankedToHelperResponses преобразует результат поиска в DTO с расстояниями
func RankedToHelperResponses(ranked []*models.RankedHelper) []*RankedHelperResponse {
	responses := make([]*RankedHelperResponse, len(ranked))
	for i, helper := range ranked {
		responses[i] = &RankedHelperResponse{
			ID:         helper.ID,
			UserID:     helper.UserID,
			Role:       helper.Role,
			Lat:        helper.Lat,
			Lng:        helper.Lng,
			DistanceKm: helper.DistanceKm,
		}
	}
	return responses
}
