package constants

import (
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/modules/inscription/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

const (
	Version = "v0.1.0"

	// IndexerPageLimit is the page size of indexer cell queries.
	IndexerPageLimit = 1000

	// SubkeyAlgIndex is the JoyID subkey algorithm (secp256r1).
	SubkeyAlgIndex uint8 = 1
)

func script(codeHash string, hashType ckb.HashType) ckb.Script {
	return ckb.Script{CodeHash: ckb.MustHexToHash(codeHash), HashType: hashType, Args: ckb.Bytes{}}
}

func dep(txHash string, depType ckb.DepType) ckb.CellDep {
	return ckb.CellDep{OutPoint: ckb.OutPoint{TxHash: ckb.MustHexToHash(txHash), Index: 0}, DepType: depType}
}

var (
	JoyIDLockTestnet = script("0xd23761b364210735c19c60561d213fb3beae2fd6172743719eff6920e020baac", ckb.HashTypeType)
	JoyIDLockMainnet = script("0xd00c84f0ec8fd441c38bc3f87a371f547190f2fcff88e642bc5bf54b9e318323", ckb.HashTypeType)
)

var Contracts = map[common.Network]inscription.Contracts{
	common.NetworkTestnet: {
		InfoType:        script("0x50fdea2d0030a8d0b3d69f883b471cab2a29cae6f01923f19cecac0f27fdaaa6", ckb.HashTypeType),
		InscriptionType: script("0x3a241ceceede72a5f55c8fb985652690f09a517d6c9070f0df0d3572fa03fb70", ckb.HashTypeType),
		RebaseType:      script("0x93043b66bb20797caad0deacaadbada5e58f0893d770ecdddb8806aff8877e29", ckb.HashTypeType),
		XudtType:        script("0x25c29dc317811a6f6f3985a7a9ebc4838bd388d19d0feeecf0bcd60f6c0975bb", ckb.HashTypeType),
		CotaType:        script("0x89cd8003a0eaf8e65e0c31525b7d1d5c1becefd2ea75bb4cff87810ae37764d8", ckb.HashTypeType),

		InfoDep:        dep("0x7bf3899cf41879ed0319bf5312c9db5bf5620fff9ebe59556c261c48f0369054", ckb.DepTypeCode),
		InscriptionDep: dep("0x9101c1db97bc2013ace8ebd0718723be3d0e3748f2ef22bd7f1dbda0ca75d7d0", ckb.DepTypeCode),
		RebaseDep:      dep("0x64ba52275a3012605dda1df52e872b3a1d99009d3b3728beffdfa36d4bdd14b7", ckb.DepTypeCode),
		XudtDep:        dep("0xbf6fb538763efec2a70a6a3dcb7242787087e1030c4e7d86585bc63a9d337f5f", ckb.DepTypeCode),

		LockDeps: map[ckb.Hash]ckb.CellDep{
			JoyIDLockTestnet.CodeHash: dep("0x4dcf3f3b09efac8995d6cbee87c5345e812d310094651e0c3d9a730f32dc9263", ckb.DepTypeDepGroup),
			ckb.SecpCodeHash:          dep("0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d37", ckb.DepTypeDepGroup),
		},
	},
	common.NetworkMainnet: {
		InfoType:        script("0x50fdea2d0030a8d0b3d69f883b471cab2a29cae6f01923f19cecac0f27fdaaa6", ckb.HashTypeType),
		InscriptionType: script("0x3a241ceceede72a5f55c8fb985652690f09a517d6c9070f0df0d3572fa03fb70", ckb.HashTypeType),
		RebaseType:      script("0x93043b66bb20797caad0deacaadbada5e58f0893d770ecdddb8806aff8877e29", ckb.HashTypeType),
		XudtType:        script("0x50bd8d6680b8b9cf98b73f3c08faf8b2a21914311954118ad6609be6e78a1b95", ckb.HashTypeData1),
		CotaType:        script("0x1122a4fb54697cf2e6e3a96c9d80fd398a936559b90954c6e88eb7ba0cf652df", ckb.HashTypeType),

		InfoDep:        dep("0x5c2705df3c0aa5486935248b1371d9309dce53c3aa2648a58694e3c025f97d83", ckb.DepTypeCode),
		InscriptionDep: dep("0xc3c812e490fd6e879b73aed8841c66b81f5caf8be0f6bd4bc00a2b5b2f15180b", ckb.DepTypeCode),
		RebaseDep:      dep("0xad0031fb2c1d3cb7c87fc44c49519d6fd26e0c68263d3ce433482f634b041851", ckb.DepTypeCode),
		XudtDep:        dep("0xc07844ce21b38e4b071dd0e1ee3b0e27afd8d7532491327f39b786343f558ab7", ckb.DepTypeCode),

		LockDeps: map[ckb.Hash]ckb.CellDep{
			JoyIDLockMainnet.CodeHash: dep("0xf05188e5f3a6767fc4687faf45ba5f1a6e25d3ada6129dae8722cb282f262493", ckb.DepTypeDepGroup),
			ckb.SecpCodeHash:          dep("0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46c", ckb.DepTypeDepGroup),
		},
	},
}
