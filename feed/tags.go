package feed

import (
	"feedcli/api"
	"feedcli/types"
)

// the remote's default page size, which the tag cloud samples from
const tagSampleSize = 30

// CollectTags derives the unique tag set from the first page of the default
// feed, order preserved as received.
func CollectTags() ([]string, *types.ApiError) {
	res, apiErr := api.Client.ListPosts(tagSampleSize, 0)
	if apiErr != nil {
		return nil, apiErr
	}

	seen := map[string]bool{}
	var tags []string

	for _, post := range res.Posts {
		for _, tag := range post.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	return tags, nil
}
