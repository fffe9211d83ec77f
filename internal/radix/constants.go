package radix

import "time"

// On-ledger addresses for the Evolving Creatures system.
const (
	EvolvingCreaturesPackage   = "package_rdx1p5u8kkr8z77ujmhyzyx36x677jnjkvfwjphu2mxyc0984eqckgmclq"
	EvolvingCreaturesComponent = "component_rdx1cr5q55fea4v2yrn5gy3n9uag9ejw3gt2h5pg9tf8rn4egw9lnchx5d"
	CreatureNFTResource        = "resource_rdx1ntq7xkr0345fz8hkkappg2xsnepuj94a9wnu287km5tswu3323sjnl"
	ToolNFTResource            = "resource_rdx1ntg0wsnuxq05z75f2jy7k20w72tgkt4crmdzcpyfvvgte3uvr9d5f0"
	SpellNFTResource           = "resource_rdx1nfjm7ecgxk4m54pyy3mc75wgshh9usmyruy5rx7gkt3w2megc9s8jf"

	MintComponent = "component_rdx1cqpv4nfsgfk9c2r9ymnqyksfkjsg07mfc49m9qw3dpgzrmjmsuuquv"

	SCVXResource = "resource_rdx1t5q4aa74uxcgzehk0u3hjy6kng9rqyr4uvktnud8ehdqaaez50n693"

	// account receiving energy purchases
	EnergyShopAccount = "account_rdx16ya2ncwya20j2w0k8d49us5ksvzepjhhh7cassx9jp9gz6hw69mhks"
	EnergyPriceCVX    = "200.0"
	EggPriceXRD       = "250"
)

// TokenAddresses maps payment token symbols to their resource addresses.
var TokenAddresses = map[string]string{
	"XRD":      "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd",
	"CVX":      "resource_rdx1th04p2c55884yytgj0e8nq79ze9wjnvu4rpg9d7nh3t698cxdt0cr9",
	"REDDICKS": "resource_rdx1t42hpqvsk4t42l6aw09hwphd2axvetp6gvas9ztue0p30f4hzdwxrp",
	"HUG":      "resource_rdx1t5kmyj54jt85malva7fxdrnpvgfgs623yt7ywdaval25vrdlmnwe97",
	"EARLY":    "resource_rdx1t5xv44c0u99z096q00mv74emwmxwjw26m98lwlzq6ddlpe9f5cuc7s",
	"FLOOP":    "resource_rdx1t5pyvlaas0ljxy0wytm5gvyamyv896m69njqdmm2stukr3xexc2up9",
	"DELIVER":  "resource_rdx1t466mhd2l2jmmzxr8cg3mkwjqhs7zmjgtder2utnh0ue5msxrhyk3t",
	"ILIS":     "resource_rdx1t4r86qqjtzl8620ahvsxuxaf366s6rf6cpy24psdkmrlkdqvzn47c2",
	"OCI":      "resource_rdx1t52pvtk5wfhltchwh3rkzls2x0r98fw9cjhpyrf3vsykhkuwrf7jg8",
	"WOWO":     "resource_rdx1t4kc5ljyrwlxvg54s6gnctt7nwwgx89h9r2gvrpm369s23yhzyyzlx",
	"MOX":      "resource_rdx1thmjcqjnlfm56v7k5g2szfrc44jn22x8tjh7xyczjpswmsnasjl5l9",
	"DAN":      "resource_rdx1tk4y4ct50fzgyjygm7j3y6r3cw5rgsatyfnwdz64yp5t388v0atw8w",
	"FOMO":     "resource_rdx1t5l954908vmg465pkj7j37z0fn4j33cdjt2g6czavjde406y4uxdy9",
	"DGC":      "resource_rdx1t4qfgjm35dkwdrpzl3d8pc053uw9v4pj5wfek0ffuzsp73evye6wu6",
	"HIT":      "resource_rdx1t4v2jke9xkcrqra9sf3lzgpxwdr590npkt03vufty4pwuu205q03az",
	"DELAY":    "resource_rdx1t4dsaa07eaytq0asfe774maqzhrakfjkpxyng2ud4j6y2tdm5l7a76",
	"EDGE":     "resource_rdx1t5vjqccrdtvxruu0p2hwqpts326kpz674grrzulcquly5ue0sg7wxk",
	"CASSIE":   "resource_rdx1tk7g72c0uv2g83g3dqtkg6jyjwkre6qnusgjhrtz0cj9u54djgnk3c",
	"RBX":      "resource_rdx1t5lenm5rr0p7urmcfjpzq5syt7cpges3wv3hzefckqe49ga6wutrhf",
}

// XRDResource is the canonical XRD address.
const XRDResource = "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd"

// Gateway client tuning.
const (
	DefaultGatewayURL = "https://mainnet.radixdlt.com"
	RequestTimeout    = 15 * time.Second
	MaxRetries        = 3
	RetryBaseDelay    = time.Second
	PageLimit         = 100
	NFTDataBatchSize  = 100
)
