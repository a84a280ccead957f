package memberdata

import (
	"github.com/mmcloughlin/geohash"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
)

// GenerateGeoHash returns one geohash per address that has at least one valid
// coordinate. An invalid component is encoded as 0. The result is never nil.
func GenerateGeoHash(addresses []model.Address) []string {
	hashes := []string{}
	for _, address := range addresses {
		lat, latOK := address.Latitude.Float()
		lng, lngOK := address.Longitude.Float()
		if !latOK && !lngOK {
			continue
		}
		hashes = append(hashes, geohash.EncodeWithPrecision(lat, lng, GeoHashPrecision))
	}
	return hashes
}
