package response_models

type ToggleLikeResponse struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}
