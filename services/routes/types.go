package routes

import (
	"store-monitor/services/api"
	"store-monitor/services/utils"
	"strconv"
)

const defaultPageLimit = 100

type PaginatedRequest struct {
	Offset int `json:"offset" validate:"gte=0"`
	Limit  int `json:"limit" validate:"gte=0,lte=1000"`
}

// Build a PaginatedRequest from the offset and limit query parameters.
// Missing parameters fall back to the first page with the default limit.
func paginatedRequestFromParams(params map[string]string) (PaginatedRequest, *utils.ErrorHandler) {
	request := PaginatedRequest{Offset: 0, Limit: defaultPageLimit}
	if value, ok := params["offset"]; ok {
		offset, err := strconv.Atoi(value)
		if err != nil {
			return request, utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
				"error parsing offset", err.Error())
		}
		request.Offset = offset
	}
	if value, ok := params["limit"]; ok {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return request, utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
				"error parsing limit", err.Error())
		}
		request.Limit = limit
	}
	if err := utils.ValidateStruct(request); err != nil {
		return request, utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
			"error validating request", err.Error())
	}
	return request, nil
}
