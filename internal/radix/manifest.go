package radix

import "fmt"

// Manifests are opaque text blobs handed to the client's wallet for signing;
// the server never parses or validates them beyond templating.

// MintNFTManifest mints the original collectible NFT (fomoHit reward).
func MintNFTManifest(account string) string {
	return fmt.Sprintf(`
CALL_METHOD
    Address(%q)
    "mint_user_nft"
;
CALL_METHOD
    Address(%q)
    "try_deposit_batch_or_abort"
    Expression("ENTIRE_WORKTOP")
    None
;
`, MintComponent, account)
}

// MintEggManifest mints an evolving creature egg for 250 XRD.
func MintEggManifest(account string) string {
	return fmt.Sprintf(`
CALL_METHOD
    Address(%q)
    "withdraw"
    Address(%q)
    Decimal(%q);
TAKE_FROM_WORKTOP
    Address(%q)
    Decimal(%q)
    Bucket("payment");
CALL_METHOD
    Address(%q)
    "mint_egg"
    Bucket("payment");
CALL_METHOD
    Address(%q)
    "try_deposit_batch_or_abort"
    Expression("ENTIRE_WORKTOP")
    None;
`, account, XRDResource, EggPriceXRD, XRDResource, EggPriceXRD, EvolvingCreaturesComponent, account)
}

// StatAllocation carries the five stat point increases for upgrade and
// level-up manifests.
type StatAllocation struct {
	Energy   int
	Strength int
	Magic    int
	Stamina  int
	Speed    int
}

// creatureWithPayment is the shared preamble: withdraw the creature NFT and
// the payment tokens into buckets.
func creatureWithPayment(account, creatureID, tokenResource string, tokenAmount float64) string {
	if tokenResource == "" {
		tokenResource = TokenAddresses["XRD"]
	}
	return fmt.Sprintf(`
CALL_METHOD
    Address(%q)
    "withdraw_non_fungibles"
    Address(%q)
    Array<NonFungibleLocalId>(
        NonFungibleLocalId(%q)
    );
TAKE_FROM_WORKTOP
    Address(%q)
    Decimal("1")
    Bucket("nft");
CALL_METHOD
    Address(%q)
    "withdraw"
    Address(%q)
    Decimal("%v");
TAKE_FROM_WORKTOP
    Address(%q)
    Decimal("%v")
    Bucket("payment");
`, account, CreatureNFTResource, creatureID,
		CreatureNFTResource,
		account, tokenResource, tokenAmount,
		tokenResource, tokenAmount)
}

// UpgradeStatsManifest allocates stat points on a form 0-2 creature.
func UpgradeStatsManifest(account, creatureID string, alloc StatAllocation, tokenResource string, tokenAmount float64) string {
	return creatureWithPayment(account, creatureID, tokenResource, tokenAmount) + fmt.Sprintf(`CALL_METHOD
    Address(%q)
    "upgrade_stats"
    Bucket("nft")
    Bucket("payment")
    %du8
    %du8
    %du8
    %du8
    %du8;
CALL_METHOD
    Address(%q)
    "deposit_batch"
    Expression("ENTIRE_WORKTOP");
`, EvolvingCreaturesComponent, alloc.Energy, alloc.Strength, alloc.Magic, alloc.Stamina, alloc.Speed, account)
}

// EvolveManifest advances a creature to its next form.
func EvolveManifest(account, creatureID, tokenResource string, tokenAmount float64) string {
	return creatureWithPayment(account, creatureID, tokenResource, tokenAmount) + fmt.Sprintf(`CALL_METHOD
    Address(%q)
    "evolve_to_next_form"
    Bucket("nft")
    Bucket("payment");
CALL_METHOD
    Address(%q)
    "deposit_batch"
    Expression("ENTIRE_WORKTOP");
`, EvolvingCreaturesComponent, account)
}

// LevelUpManifest allocates stat points on a final-form creature.
func LevelUpManifest(account, creatureID string, alloc StatAllocation, tokenResource string, tokenAmount float64) string {
	return creatureWithPayment(account, creatureID, tokenResource, tokenAmount) + fmt.Sprintf(`CALL_METHOD
    Address(%q)
    "level_up_stats"
    Bucket("nft")
    Bucket("payment")
    %du8
    %du8
    %du8
    %du8
    %du8;
CALL_METHOD
    Address(%q)
    "deposit_batch"
    Expression("ENTIRE_WORKTOP");
`, EvolvingCreaturesComponent, alloc.Energy, alloc.Strength, alloc.Magic, alloc.Stamina, alloc.Speed, account)
}

// CombineManifest fuses creature B into creature A, burning B.
func CombineManifest(account, creatureAID, creatureBID string) string {
	return fmt.Sprintf(`
CALL_METHOD
    Address(%q)
    "withdraw_non_fungibles"
    Address(%q)
    Array<NonFungibleLocalId>(
        NonFungibleLocalId(%q),
        NonFungibleLocalId(%q)
    );
TAKE_FROM_WORKTOP
    Address(%q)
    Decimal("1")
    Bucket("creature_a");
TAKE_FROM_WORKTOP
    Address(%q)
    Decimal("1")
    Bucket("creature_b");
CALL_METHOD
    Address(%q)
    "combine_creatures"
    Bucket("creature_a")
    Bucket("creature_b");
CALL_METHOD
    Address(%q)
    "deposit_batch"
    Expression("ENTIRE_WORKTOP");
`, account, CreatureNFTResource, creatureAID, creatureBID,
		CreatureNFTResource, CreatureNFTResource,
		EvolvingCreaturesComponent, account)
}

// BuyEnergyManifest transfers 200 CVX to the energy shop account.
func BuyEnergyManifest(account string) string {
	return fmt.Sprintf(`
CALL_METHOD
    Address(%q)
    "withdraw"
    Address(%q)
    Decimal(%q)
;
CALL_METHOD
    Address(%q)
    "try_deposit_batch_or_abort"
    Expression("ENTIRE_WORKTOP")
    None
;
`, account, TokenAddresses["CVX"], EnergyPriceCVX, EnergyShopAccount)
}
