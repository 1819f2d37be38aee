package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	AccountRepoName      RepositoryName = "account"
	TransferRepoName     RepositoryName = "transfer"
	TransactionRepoName  RepositoryName = "transaction"
	BillRepoName         RepositoryName = "bill"
	AuditRepoName        RepositoryName = "audit"
	WalletMirrorRepoName RepositoryName = "wallet_mirror"
)
