package chain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
)

func newTestClient(handler http.Handler) (Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		LcdUrl:     srv.URL,
		Timeout:    5 * time.Second,
	})
	return c, srv
}

func decodeSmartQuery(t *testing.T, path string) map[string]json.RawMessage {
	parts := strings.Split(path, "/smart/")
	require.Len(t, parts, 2)
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	q := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(raw, &q))
	return q
}

func Test_OwnerOf(t *testing.T) {
	req := require.New(t)

	var c Client
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := decodeSmartQuery(t, r.URL.Path)
		req.Contains(q, "owner_of")
		fmt.Fprint(w, `{"data":{"owner":"addr_owner"}}`)
	}))
	defer srv.Close()

	owner, err := c.OwnerOf(bCtx.Background(), "addr_nft", "1")
	req.NoError(err)
	req.Equal(domain.Address("addr_owner"), owner)
}

func Test_ApprovalOf(t *testing.T) {
	cases := []struct {
		name    string
		expires string
	}{
		{"never", `{"never":{}}`},
		{"atHeight", `{"at_height":100}`},
		{"atTime", `{"at_time":"1700000000000000000"}`},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := decodeSmartQuery(t, r.URL.Path)
				require.Contains(t, q, "approval")
				fmt.Fprintf(w, `{"data":{"approval":{"spender":"addr_market","expires":%s}}}`, cs.expires)
			}))
			defer srv.Close()

			exp, err := c.ApprovalOf(bCtx.Background(), "addr_nft", "1", "addr_market")
			require.NoError(t, err)
			switch cs.name {
			case "never":
				require.True(t, exp.IsNever())
			case "atHeight":
				require.Equal(t, uint64(100), *exp.AtHeight)
			case "atTime":
				require.Equal(t, time.Unix(0, 1700000000000000000).UTC(), *exp.AtTime)
			}
		})
	}
}

func Test_ApprovalOf_noApproval(t *testing.T) {
	req := require.New(t)

	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := c.ApprovalOf(bCtx.Background(), "addr_nft", "1", "addr_market")
	req.ErrorIs(err, ErrStatusCodeNotOk)
}

func Test_Minter(t *testing.T) {
	req := require.New(t)

	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"minter":"addr_minter"}}`)
	}))
	defer srv.Close()

	minter, err := c.Minter(bCtx.Background(), "addr_collection")
	req.NoError(err)
	req.Equal(domain.Address("addr_minter"), minter)
}

func Test_LatestBlock(t *testing.T) {
	req := require.New(t)

	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/cosmos/base/tendermint/v1beta1/blocks/latest", r.URL.Path)
		fmt.Fprint(w, `{"block":{"header":{"height":"12345","time":"2023-11-14T22:13:20Z"}}}`)
	}))
	defer srv.Close()

	block, err := c.LatestBlock(bCtx.Background())
	req.NoError(err)
	req.Equal(uint64(12345), block.Height)
	req.Equal(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), block.Time)
}
