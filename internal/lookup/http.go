package lookup

import (
	"fmt"
	"net/http"

	"github.com/qdm12/geotrack/internal/network"
)

func checkResponse(response *http.Response) (err error) {
	switch response.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusForbidden, http.StatusTooManyRequests:
		bodyString := network.BodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w (%s)", ErrTooManyRequests, bodyString)
	case http.StatusNotFound:
		bodyString := network.BodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w (%s)", ErrIPNotFound, bodyString)
	default:
		bodyString := network.BodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode), bodyString)
	}
}
