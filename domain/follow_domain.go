package domain

import "errors"

var (
	MessageSuccessFollow       = "vendor followed successfully"
	MessageSuccessUnfollow     = "vendor unfollowed successfully"
	MessageSuccessListFollowed = "followed vendors retrieved successfully"

	MessageFailedFollow       = "failed to follow vendor"
	MessageFailedUnfollow     = "failed to unfollow vendor"
	MessageFailedListFollowed = "failed to retrieve followed vendors"

	ErrAlreadyFollowing = errors.New("already following this vendor")
	ErrNotFollowing     = errors.New("not following this vendor")
)

type (
	FollowStatusResponse struct {
		VendorID      string `json:"vendor_id"`
		IsFollowing   bool   `json:"is_following"`
		FollowerCount int64  `json:"follower_count"`
	}
)
