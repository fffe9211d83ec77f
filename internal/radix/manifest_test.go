package radix

import (
	"strings"
	"testing"
)

const testAccount = "account_rdx128y6j78mt0aqv6372evz28hrxp8mn06ccddkr7xppc88hyvynvjdwr"

func TestMintNFTManifest(t *testing.T) {
	m := MintNFTManifest(testAccount)

	for _, want := range []string{MintComponent, testAccount, "mint_user_nft", "try_deposit_batch_or_abort"} {
		if !strings.Contains(m, want) {
			t.Errorf("manifest missing %q", want)
		}
	}
}

func TestMintEggManifest(t *testing.T) {
	m := MintEggManifest(testAccount)

	for _, want := range []string{XRDResource, EggPriceXRD, EvolvingCreaturesComponent, "mint_egg", `Bucket("payment")`} {
		if !strings.Contains(m, want) {
			t.Errorf("manifest missing %q", want)
		}
	}
}

func TestUpgradeStatsManifest(t *testing.T) {
	alloc := StatAllocation{Energy: 1, Magic: 2}
	m := UpgradeStatsManifest(testAccount, "#42#", alloc, TokenAddresses["CVX"], 50)

	for _, want := range []string{
		`NonFungibleLocalId("#42#")`,
		CreatureNFTResource,
		TokenAddresses["CVX"],
		`Decimal("50")`,
		"upgrade_stats",
		"1u8",
		"2u8",
	} {
		if !strings.Contains(m, want) {
			t.Errorf("manifest missing %q", want)
		}
	}
}

func TestUpgradeStatsManifestDefaultsToXRD(t *testing.T) {
	m := UpgradeStatsManifest(testAccount, "#1#", StatAllocation{}, "", 10)
	if !strings.Contains(m, TokenAddresses["XRD"]) {
		t.Error("empty token resource should fall back to XRD")
	}
}

func TestEvolveManifest(t *testing.T) {
	m := EvolveManifest(testAccount, "#7#", TokenAddresses["RBX"], 100)

	if !strings.Contains(m, "evolve_to_next_form") {
		t.Error("manifest missing evolve_to_next_form call")
	}
	if !strings.Contains(m, `NonFungibleLocalId("#7#")`) {
		t.Error("manifest missing creature id")
	}
}

func TestCombineManifest(t *testing.T) {
	m := CombineManifest(testAccount, "#1#", "#2#")

	if !strings.Contains(m, `NonFungibleLocalId("#1#")`) || !strings.Contains(m, `NonFungibleLocalId("#2#")`) {
		t.Error("manifest should reference both creatures")
	}
	if !strings.Contains(m, "combine_creatures") {
		t.Error("manifest missing combine_creatures call")
	}
}

func TestBuyEnergyManifest(t *testing.T) {
	m := BuyEnergyManifest(testAccount)

	for _, want := range []string{TokenAddresses["CVX"], EnergyPriceCVX, EnergyShopAccount} {
		if !strings.Contains(m, want) {
			t.Errorf("manifest missing %q", want)
		}
	}
}
