package scope

import "regexp"

// Keyword tables for the condominium-management domain. Matching is plain
// substring containment over the case-folded message, so accented and
// unaccented forms must both be listed; no normalization beyond lowercasing
// is performed.

// condoKeywords covers the general condominium universe: governance,
// maintenance, finances, common areas, staff and day-to-day incidents.
var condoKeywords = []string{
	"condomínio", "condominio", "condominial", "síndico", "sindico", "subsíndico", "subsindico",
	"administração condominial", "administracao condominial",
	"morador", "apartamento", "prédio", "predio", "residencial", "comercial", "edifício", "edificio",
	"assembleia", "reunião condominial", "reuniao condominial", "rateio",
	"despesas condominiais", "manutenção", "manutencao", "limpeza", "portaria", "zelador",
	"elevador", "piscina", "salão de festas", "salao de festas", "garagem", "vaga",
	"inadimplência", "inadimplencia", "multa", "juros", "cobrança", "cobranca",
	"convenção", "convencao", "regimento interno", "livro de ocorrências", "livro de ocorrencias",
	"livro de atas", "prestação de contas", "prestacao de contas", "balanço", "balanco",
	"orçamento", "orcamento", "reserva técnica", "reserva tecnica",
	"reforma", "obra", "licitação", "licitacao", "fornecedor",
	"prestador de serviço", "prestador de servico", "seguro", "incêndio", "incendio",
	"vandalismo", "barulho", "infiltração", "infiltracao", "vazamento",
	"energia elétrica", "energia eletrica", "água", "agua", "gás", "gas",
	"correspondência", "correspondencia", "encomenda", "visita", "prestador",
	"funcionário", "funcionario", "empregado", "terceirizado", "contrato", "recibo",
	"nota fiscal", "iptu", "taxa condominial", "taxa de condomínio", "taxa de condominio",
	"cota", "fração ideal", "fracao ideal", "área comum", "area comum",
	"área privativa", "area privativa", "playground", "quadra", "churrasqueira",
	"lavanderia", "depósito", "deposito", "bicicletário", "bicicletario",
	"advogado", "processo",

	// construction and engineering
	"engenheiro", "arquiteto", "projeto", "construção", "construcao",
	"estrutura", "fundação", "fundacao", "alvenaria", "hidráulica", "hidraulica",
	"elétrica", "eletrica", "impermeabilização", "impermeabilizacao", "pintura",
	"revestimento", "telhado", "laje", "pilar", "viga", "fachada", "marquise",
	"subsolo", "térreo", "terreo", "pavimento", "bloco", "torre",
	"interfone", "porteiro eletrônico", "porteiro eletronico", "câmera", "camera", "cftv",
	"alarme", "extintor", "hidrante", "sprinkler",
	"detector de fumaça", "detector de fumaca",
	"saída de emergência", "saida de emergencia",
	"escada de incêndio", "escada de incendio",
	"área de lazer", "area de lazer", "quadra esportiva", "estacionamento",

	// condominium legal matters
	"advogado condominial", "advocacia condominial", "processo condominial",
	"ação condominial", "acao condominial", "execução condominial", "execucao condominial",
	"cobrança judicial", "cobranca judicial", "multa condominial",
	"correção monetária", "correcao monetaria", "penhora", "protesto",
	"notificação extrajudicial", "notificacao extrajudicial", "acordo judicial",
	"mediação", "mediacao", "conciliação", "conciliacao", "arbitragem",
	"sentença", "sentenca", "decisão judicial", "decisao judicial",
	"danos morais", "danos materiais", "responsabilidade civil",
	"negligência", "negligencia", "omissão", "omissao",
	"responsabilidade do síndico", "responsabilidade do sindico",
	"responsabilidade do condomínio", "responsabilidade do condominio",

	// condominium accounting
	"contador", "contador condominial", "contabilidade condominial",
	"escritório contábil", "escritorio contabil",
	"balanço patrimonial", "balanco patrimonial",
	"demonstração de resultados", "demonstracao de resultados", "dre", "fluxo de caixa",
	"orçamento anual", "orcamento anual", "orçamento mensal", "orcamento mensal",
	"rateio de despesas", "rateio condominial", "cota condominial", "coeficiente de rateio",
	"despesas ordinárias", "despesas ordinarias",
	"despesas extraordinárias", "despesas extraordinarias",
	"fundo de reserva", "fundo de obras", "conta bancária", "conta bancaria",
	"extrato bancário", "extrato bancario",
	"conciliação bancária", "conciliacao bancaria",
	"lançamento contábil", "lancamento contabil",
	"conta a pagar", "conta a receber", "auditoria",
	"perícia contábil", "pericia contabil", "laudo contábil", "laudo contabil",
	"relatório contábil", "relatorio contabil", "mensalidade condominial",
	"juros de mora", "multa por atraso", "parcelamento", "acordo de pagamento",
}

// productKeywords covers the Síndico Pro product surface: features, screens
// and support vocabulary.
var productKeywords = []string{
	"síndico pro", "sindico pro", "sindicopro", "sistema", "software", "aplicativo",
	"dashboard", "painel", "relatório", "relatorio", "ocorrência", "ocorrencia",
	"tarefa", "realização", "realizacao", "nps", "avaliação", "avaliacao",
	"pesquisa", "enquete", "votação", "votacao", "kanban", "card", "coluna", "status",
	"pendente", "em andamento", "concluído", "concluido", "atrasado",
	"unidade", "usuário", "usuario", "perfil", "configuração", "configuracao",
	"ajuda", "suporte", "tutorial", "manual", "documentação", "documentacao",
	"funcionalidade", "feature", "módulo", "modulo", "menu", "navegação", "navegacao",
	"login", "logout", "senha", "password", "email",
	"notificação", "notificacao", "alerta", "lembrete", "calendário", "calendario",
	"prazo", "vencimento", "pagamento", "fatura", "boleto", "pix",
	"transferência", "transferencia", "banco", "conta", "saldo", "extrato",
	"movimentação", "movimentacao",
}

// overrideTokens is the small high-precision set whose presence cancels an
// out-of-scope pattern match (the question is about the condominium after all).
var overrideTokens = []string{
	"condomínio", "condominio", "condominial", "síndico", "sindico",
	"conselho", "assembleia", "morador",
}

// contextWords signals condominium context during scoring; broader than the
// override set.
var contextWords = []string{
	"condomínio", "condominio", "síndico", "sindico", "conselho", "assembleia",
	"morador", "apartamento", "prédio", "predio", "edifício", "edificio",
	"bloco", "unidade", "área comum", "area comum", "área privativa", "area privativa",
}

// questionWords marks the generic "how do I use the system" question shape.
var questionWords = []string{
	"como", "onde", "quando", "por que", "porque", "qual", "quais",
	"funciona", "fazer", "criar", "editar", "excluir", "buscar",
	"filtrar", "ordenar", "exportar", "importar", "configurar",
}

// Sub-domain trigger words. Each flag only admits a message when combined
// with condominium context in the message or a manager role hint.
var architectureWords = []string{
	"engenheiro", "arquiteto", "projeto", "construção", "construcao",
	"reforma", "obra", "estrutura", "fachada", "fundação", "fundacao",
	"hidráulica", "hidraulica", "elétrica", "eletrica",
	"impermeabilização", "impermeabilizacao",
}

var legalWords = []string{
	"advogado", "advocacia", "processo", "ação", "acao", "execução", "execucao",
	"cobrança judicial", "cobranca judicial", "penhora", "embargo", "protesto",
	"notificação extrajudicial", "notificacao extrajudicial", "acordo judicial",
	"transação", "transacao", "mediação", "mediacao", "conciliação", "conciliacao",
	"arbitragem", "laudo arbitral", "sentença", "sentenca",
	"decisão judicial", "decisao judicial", "recurso", "apelação", "apelacao", "agravo",
	"responsabilidade civil", "culpa", "negligência", "negligencia", "omissão", "omissao",
}

var accountingWords = []string{
	"contador", "contabilidade", "escritório contábil", "escritorio contabil",
	"prestação de contas", "prestacao de contas",
	"balanço patrimonial", "balanco patrimonial",
	"demonstração de resultados", "demonstracao de resultados", "dre", "fluxo de caixa",
	"orçamento anual", "orcamento anual", "orçamento mensal", "orcamento mensal",
	"rateio de despesas", "rateio condominial", "coeficiente de rateio",
	"despesas ordinárias", "despesas ordinarias",
	"despesas extraordinárias", "despesas extraordinarias",
	"reserva técnica", "reserva tecnica", "fundo de reserva", "fundo de obras",
	"conta bancária", "conta bancaria", "extrato bancário", "extrato bancario",
	"lançamento contábil", "lancamento contabil", "debitar", "creditar",
	"saldo", "conta a pagar", "conta a receber", "auditoria",
	"perícia contábil", "pericia contabil", "laudo contábil", "laudo contabil",
	"relatório contábil", "relatorio contabil",
}

// outOfScopePattern ties a compiled rejection pattern to its topic category.
// Patterns are deliberately narrow, anchored on "personal" framing, so that
// condominium-adjacent phrasing does not trigger a false rejection.
type outOfScopePattern struct {
	Category string
	re       *regexp.Regexp
}

// outOfScopePatterns is evaluated in order; the first match wins. Stems with
// \w* cover inflected forms (urologista, urológica) since \b in Go regexp is
// ASCII-only and accented suffixes would defeat whole-word anchors.
var outOfScopePatterns = []outOfScopePattern{
	{"health", regexp.MustCompile(`\b(medic\w*|m[eé]dic\w*|sa[uú]de pessoal|hospital|cl[ií]nica m[eé]dica|consulta m[eé]dica|exame m[eé]dico|tratamento m[eé]dico|doen[cç]a pessoal|urolog\w*|ginecolog\w*|cardiolog\w*|neurolog\w*|dermatolog\w*|ortoped\w*|psic[oó]log\w*|psiquiatra|terapeuta|depress[aã]o|ansiedade|estresse|dentista|odontolog\w*)`)},
	{"personal_legal", regexp.MustCompile(`\b(advogado pessoal|processo pessoal|justi[cç]a pessoal|tribunal pessoal|div[oó]rcio|heran[cç]a|testamento|casamento|pens[aã]o aliment[ií]cia)`)},
	{"personal_finance", regexp.MustCompile(`\b(contador pessoal|contabilidade pessoal|imposto pessoal|imposto de renda pessoal|declara[cç][aã]o pessoal|ir pessoal|investimento pessoal)`)},
	{"education", regexp.MustCompile(`\b(escola pessoal|faculdade pessoal|universidade pessoal|curso pessoal|estudo pessoal|matr[ií]cula pessoal|vestibular|enem)\b`)},
	{"food", regexp.MustCompile(`\b(restaurante pessoal|bar pessoal|lanchonete pessoal|pizzaria pessoal|receita de comida|almo[cç]o pessoal|jantar pessoal)`)},
	{"travel", regexp.MustCompile(`\b(viagem pessoal|hotel pessoal|passagem a[eé]rea|pacote de viagem|turismo pessoal|f[eé]rias pessoais?)`)},
	{"transport", regexp.MustCompile(`\b(carro pessoal|moto pessoal|compra de carro|compra de moto|financiamento de carro|taxi pessoal|t[aá]xi pessoal)`)},
	{"fashion", regexp.MustCompile(`\b(roupa pessoal|sapato pessoal|comprar roupa|comprar sapato|moda pessoal|fashion)`)},
	{"technology", regexp.MustCompile(`\b(computador pessoal|celular pessoal|smartphone pessoal|tablet pessoal|laptop pessoal|compra de computador|compra de celular)`)},
	{"entertainment", regexp.MustCompile(`\b(filme pessoal|s[eé]rie pessoal|netflix|youtube|instagram|facebook|tiktok|entretenimento pessoal)`)},
	{"music", regexp.MustCompile(`\b(m[uú]sica pessoal|spotify|deezer|show pessoal|concerto pessoal|festival pessoal)`)},
	{"sports", regexp.MustCompile(`\b(esporte pessoal|futebol pessoal|basquete pessoal|v[oô]lei pessoal|t[eê]nis pessoal|nata[cç][aã]o pessoal|academia pessoal|gin[aá]stica pessoal)`)},
	{"politics", regexp.MustCompile(`\b(pol[ií]tica pessoal|elei[cç][aã]o pessoal|candidato pessoal|partido pol[ií]tico|governo federal)`)},
	{"religion", regexp.MustCompile(`\b(religi[aã]o pessoal|igreja pessoal|templo pessoal|missa pessoal|culto pessoal|ora[cç][aã]o pessoal)`)},
}
